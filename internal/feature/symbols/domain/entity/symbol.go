// Package entity defines the domain models for the symbols feature.
package entity

import "time"

// Symbol represents a stock ticker symbol in the system.
// It holds the static metadata for a tradable security: its code,
// company name, sector, trading currency, and exchange.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Sector    string    `gorm:"size:100"`
	Currency  string    `gorm:"size:8"`
	Exchange  string    `gorm:"size:64"`
	IsActive  bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the GORM default pluralization.
func (Symbol) TableName() string {
	return "symbols"
}
