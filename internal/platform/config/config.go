// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSQLitePath is the database file written when no path is configured.
const DefaultSQLitePath = "finance_data.db"

// dateLayout is the format for the range start/end fields.
const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	Symbols []string `yaml:"symbols"`
	Range   struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"range"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresURL string `yaml:"postgres_url"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; everything can come from
// environment variables or defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("INGEST_SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("INGEST_DB_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.PostgresURL = v
	}

	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = DefaultSQLitePath
	}
	return cfg, nil
}

// UseSQLite pins the database to the given SQLite file. Any configured
// Postgres URL is cleared so the file actually gets used.
func (c *Config) UseSQLite(path string) {
	c.Database.SQLitePath = path
	c.Database.PostgresURL = ""
}

// DateRange parses the configured range. End defaults to now, start defaults
// to one year before end.
func (c *Config) DateRange() (time.Time, time.Time, error) {
	end := time.Now().UTC()
	if c.Range.End != "" {
		t, err := time.Parse(dateLayout, c.Range.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse range end %q: %w", c.Range.End, err)
		}
		// inclusive of the end date's trading day
		end = t.AddDate(0, 0, 1)
	}

	start := end.AddDate(-1, 0, 0)
	if c.Range.Start != "" {
		t, err := time.Parse(dateLayout, c.Range.Start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse range start %q: %w", c.Range.Start, err)
		}
		start = t
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("range start %s is not before end %s",
			start.Format(dateLayout), end.Format(dateLayout))
	}
	return start, end, nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
