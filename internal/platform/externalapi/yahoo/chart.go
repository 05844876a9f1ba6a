package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"finance_ingest/internal/feature/marketdata/domain/entity"
	"finance_ingest/internal/feature/marketdata/usecase"
	"finance_ingest/internal/platform/externalapi/yahoo/dto"
)

// GetDailyBars はv8 chartエンドポイントから指定期間の日足と
// 配当・分割・分配金イベントを取得し、entity.Seriesとして返します。
// 休場日のnullバーはスキップされます。
func (c *Client) GetDailyBars(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("events", "div,splits,capitalGains")
	q.Set("includeAdjustedClose", "true")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	status, err := c.getJSON(ctx, u, &body)
	if err != nil {
		return nil, err
	}
	if err := mapAPIError(body.Chart.Error); err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, fmt.Errorf("yahoo http %d", status)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Timestamp) == 0 {
		return nil, usecase.ErrNoData
	}

	res := body.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return nil, usecase.ErrNoData
	}
	quote := res.Indicators.Quote[0]
	// 価格配列はTimestampとインデックスで対応している。短い配列をそのまま
	// 参照するとパニックになるため、取り込み前に長さを検証する。
	n := len(res.Timestamp)
	if len(quote.Open) < n || len(quote.High) < n || len(quote.Low) < n ||
		len(quote.Close) < n || len(quote.Volume) < n {
		return nil, fmt.Errorf("yahoo: misaligned quote arrays for %s", symbol)
	}
	var adj []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	series := &entity.Series{}
	for i, ts := range res.Timestamp {
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // 休場日などのnullバーはスキップ
		}
		bar := entity.PriceBar{
			Symbol:   symbol,
			Date:     dateOnly(ts),
			Open:     *quote.Open[i],
			High:     *quote.High[i],
			Low:      *quote.Low[i],
			Close:    *quote.Close[i],
			AdjClose: *quote.Close[i],
		}
		if quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		if i < len(adj) && adj[i] != nil {
			bar.AdjClose = *adj[i]
		}
		series.Bars = append(series.Bars, bar)
	}

	// イベントはエポック秒をキーとするマップで返されるため、日付順に並べ直す
	for _, ev := range res.Events.Dividends {
		series.Dividends = append(series.Dividends, entity.Dividend{
			Symbol: symbol,
			Date:   dateOnly(ev.Date),
			Amount: ev.Amount,
		})
	}
	for _, ev := range res.Events.Splits {
		if ev.Denominator == 0 {
			continue
		}
		series.Splits = append(series.Splits, entity.Split{
			Symbol: symbol,
			Date:   dateOnly(ev.Date),
			Ratio:  ev.Numerator / ev.Denominator,
		})
	}
	for _, ev := range res.Events.CapitalGains {
		series.CapitalGains = append(series.CapitalGains, entity.CapitalGain{
			Symbol: symbol,
			Date:   dateOnly(ev.Date),
			Amount: ev.Amount,
		})
	}

	sort.Slice(series.Bars, func(i, j int) bool { return series.Bars[i].Date.Before(series.Bars[j].Date) })
	sort.Slice(series.Dividends, func(i, j int) bool { return series.Dividends[i].Date.Before(series.Dividends[j].Date) })
	sort.Slice(series.Splits, func(i, j int) bool { return series.Splits[i].Date.Before(series.Splits[j].Date) })
	sort.Slice(series.CapitalGains, func(i, j int) bool { return series.CapitalGains[i].Date.Before(series.CapitalGains[j].Date) })

	return series, nil
}
