package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	fundentity "finance_ingest/internal/feature/fundamentals/domain/entity"
	marketusecase "finance_ingest/internal/feature/marketdata/usecase"
	symbolentity "finance_ingest/internal/feature/symbols/domain/entity"
	"finance_ingest/internal/platform/externalapi/yahoo/dto"
)

// fundamentalsModules はGetStatementsが要求するquoteSummaryモジュールの一覧です。
// 年次と四半期の両方を取得します。
const fundamentalsModules = "balanceSheetHistory,balanceSheetHistoryQuarterly," +
	"cashflowStatementHistory,cashflowStatementHistoryQuarterly," +
	"incomeStatementHistory,incomeStatementHistoryQuarterly"

// quoteSummary はv10 quoteSummaryエンドポイントから指定モジュールを取得します。
func (c *Client) quoteSummary(ctx context.Context, symbol, modules string) (*dto.QuoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", modules)

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.QuoteSummaryResponse
	status, err := c.getJSON(ctx, u, &body)
	if err != nil {
		return nil, err
	}
	if err := mapAPIError(body.QuoteSummary.Error); err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, fmt.Errorf("yahoo http %d", status)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty quoteSummary result: %w", marketusecase.ErrSymbolNotFound)
	}
	return &body.QuoteSummary.Result[0], nil
}

// GetProfile は銘柄の静的メタデータ（社名、セクター、通貨、取引所）を取得します。
func (c *Client) GetProfile(ctx context.Context, code string) (symbolentity.Symbol, error) {
	r, err := c.quoteSummary(ctx, code, "assetProfile,price")
	if err != nil {
		return symbolentity.Symbol{}, err
	}

	s := symbolentity.Symbol{Code: code}
	if r.Price != nil {
		s.Name = r.Price.LongName
		if s.Name == "" {
			s.Name = r.Price.ShortName
		}
		s.Currency = r.Price.Currency
		s.Exchange = r.Price.ExchangeName
	}
	if r.AssetProfile != nil {
		s.Sector = r.AssetProfile.Sector
	}
	return s, nil
}

// GetStatements は貸借対照表・キャッシュフロー計算書・損益計算書の明細を
// ロング形式（1行=1項目）で取得します。Symbolフィールドは呼び出し元が設定します。
func (c *Client) GetStatements(ctx context.Context, symbol string) ([]fundentity.StatementLine, error) {
	r, err := c.quoteSummary(ctx, symbol, fundamentalsModules)
	if err != nil {
		return nil, err
	}

	var lines []fundentity.StatementLine
	if r.BalanceSheetHistory != nil {
		lines = append(lines, statementLines(fundentity.StatementBalanceSheet, false, r.BalanceSheetHistory.Statements)...)
	}
	if r.BalanceSheetHistoryQuarterly != nil {
		lines = append(lines, statementLines(fundentity.StatementBalanceSheet, true, r.BalanceSheetHistoryQuarterly.Statements)...)
	}
	if r.CashflowStatementHistory != nil {
		lines = append(lines, statementLines(fundentity.StatementCashFlow, false, r.CashflowStatementHistory.Statements)...)
	}
	if r.CashflowStatementHistoryQuarterly != nil {
		lines = append(lines, statementLines(fundentity.StatementCashFlow, true, r.CashflowStatementHistoryQuarterly.Statements)...)
	}
	if r.IncomeStatementHistory != nil {
		lines = append(lines, statementLines(fundentity.StatementIncomeStatement, false, r.IncomeStatementHistory.Statements)...)
	}
	if r.IncomeStatementHistoryQuarterly != nil {
		lines = append(lines, statementLines(fundentity.StatementIncomeStatement, true, r.IncomeStatementHistoryQuarterly.Statements)...)
	}
	return lines, nil
}

// statementLines は1種類の財務諸表のレポート群を明細行に展開します。
// 数値の{raw, fmt}ラッパー以外の項目（maxAgeなど）は読み飛ばします。
func statementLines(statementType string, quarterly bool, stmts []dto.Statement) []fundentity.StatementLine {
	var out []fundentity.StatementLine
	for _, st := range stmts {
		rawDate, ok := st["endDate"]
		if !ok {
			continue
		}
		var d dto.WrappedDate
		if err := json.Unmarshal(rawDate, &d); err != nil || d.Raw == 0 {
			continue
		}
		date := dateOnly(d.Raw)

		for item, raw := range st {
			if item == "endDate" || item == "maxAge" {
				continue
			}
			var v dto.WrappedValue
			if err := json.Unmarshal(raw, &v); err != nil || v.Raw == nil {
				continue
			}
			out = append(out, fundentity.StatementLine{
				StatementType: statementType,
				Date:          date,
				Item:          item,
				Value:         *v.Raw,
				Quarterly:     quarterly,
			})
		}
	}
	return out
}
