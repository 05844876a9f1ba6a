package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	fundusecase "finance_ingest/internal/feature/fundamentals/usecase"
	marketusecase "finance_ingest/internal/feature/marketdata/usecase"
	symbolusecase "finance_ingest/internal/feature/symbols/usecase"
	"finance_ingest/internal/platform/externalapi/yahoo/dto"
)

// Client はYahoo Finance公開APIから株価・銘柄・財務データを取得するクライアントです。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがフィーチャーごとのRepositoryインターフェースを実装していることをコンパイル時に検証します。
var (
	_ marketusecase.MarketRepository     = (*Client)(nil)
	_ symbolusecase.ProfileRepository    = (*Client)(nil)
	_ fundusecase.FundamentalsRepository = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// getJSON はGETリクエストを実行し、JSONレスポンスをoutにデコードして
// HTTPステータスコードを返します。Yahooはエラー時もJSONエンベロープを返すため、
// ステータスの評価は呼び出し元がエンベロープ確認後に行います。
func (c *Client) getJSON(ctx context.Context, u string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		if res.StatusCode >= 400 {
			return res.StatusCode, fmt.Errorf("yahoo http %d", res.StatusCode)
		}
		return res.StatusCode, fmt.Errorf("yahoo decode: %w", err)
	}
	return res.StatusCode, nil
}

// mapAPIError はYahooのエラーエンベロープをドメインのエラーに変換します。
func mapAPIError(e *dto.APIError) error {
	if e == nil {
		return nil
	}
	if e.Code == "Not Found" {
		return fmt.Errorf("yahoo: %s: %w", e.Description, marketusecase.ErrSymbolNotFound)
	}
	return fmt.Errorf("yahoo: %s: %s", e.Code, e.Description)
}

// dateOnly はエポック秒をUTCの0時に正規化したtime.Timeに変換します。
func dateOnly(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
