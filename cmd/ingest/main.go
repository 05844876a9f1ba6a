package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	fundadapters "finance_ingest/internal/feature/fundamentals/adapters"
	fundusecase "finance_ingest/internal/feature/fundamentals/usecase"
	marketadapters "finance_ingest/internal/feature/marketdata/adapters"
	marketusecase "finance_ingest/internal/feature/marketdata/usecase"
	symboladapters "finance_ingest/internal/feature/symbols/adapters"
	symbolusecase "finance_ingest/internal/feature/symbols/usecase"
	"finance_ingest/internal/platform/config"
	"finance_ingest/internal/platform/db"
	"finance_ingest/internal/platform/externalapi/yahoo"
	platformhttp "finance_ingest/internal/platform/http"
)

func main() {
	// .envがあれば読み込む（無くても可）
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	symbolsFlag := flag.String("symbols", "", "comma-separated ticker symbols (overrides config)")
	dbFlag := flag.String("db", "", "SQLite database file path (overrides config and DATABASE_URL)")
	startFlag := flag.String("start", "", "range start date YYYY-MM-DD (overrides config)")
	endFlag := flag.String("end", "", "range end date YYYY-MM-DD (overrides config)")
	skipFundamentals := flag.Bool("skip-fundamentals", false, "do not ingest financial statements")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *symbolsFlag != "" {
		cfg.Symbols = nil
		for _, s := range strings.Split(*symbolsFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Symbols = append(cfg.Symbols, s)
			}
		}
	}
	if *dbFlag != "" {
		cfg.UseSQLite(*dbFlag)
	}
	if *startFlag != "" {
		cfg.Range.Start = *startFlag
	}
	if *endFlag != "" {
		cfg.Range.End = *endFlag
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	yahooCfg := yahoo.LoadConfig()
	client := yahoo.NewClient(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout))

	// Repository
	barRepo := marketadapters.NewBarRepository(gdb)
	eventRepo := marketadapters.NewEventRepository(gdb)
	symbolRepo := symboladapters.NewSymbolRepository(gdb)
	statementRepo := fundadapters.NewStatementRepository(gdb)

	// Usecase
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo, client)
	marketUC := marketusecase.NewIngestUsecase(client, barRepo, eventRepo)
	fundUC := fundusecase.NewIngestUsecase(client, statementRepo)
	summaryUC := marketusecase.NewSummaryUsecase(barRepo, symbolRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// 対象銘柄: フラグ/設定で未指定の場合はDBの登録済み銘柄を使う
	symbols := cfg.Symbols
	if len(symbols) == 0 {
		symbols, err = symbolUC.ListActiveCodes(ctx)
		if err != nil {
			log.Fatal("failed to load symbols:", err)
		}
	}
	if len(symbols) == 0 {
		log.Fatal("no symbols configured: pass -symbols or list them in the config file")
	}

	if err := symbolUC.SyncProfiles(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	if err := marketUC.IngestAll(ctx, symbols, start, end); err != nil {
		log.Fatal(err)
	}
	if !*skipFundamentals {
		if err := fundUC.IngestAll(ctx, symbols); err != nil {
			log.Fatal(err)
		}
	}

	// 取り込み結果の確認レポート
	report, err := summaryUC.Summarize(ctx)
	if err != nil {
		log.Fatal("failed to summarize:", err)
	}
	log.Printf("symbols: %d, price bars: %d", report.Symbols, report.Bars)
	registered, err := symbolUC.ListActiveSymbols(ctx)
	if err != nil {
		log.Fatal("failed to list symbols:", err)
	}
	for _, s := range registered {
		log.Printf("symbol: %s %s [%s]", s.Code, s.Name, s.Exchange)
	}
	if report.Bars > 0 {
		log.Printf("date range: %s to %s",
			report.FirstDate.Format("2006-01-02"), report.LastDate.Format("2006-01-02"))
		for _, b := range report.Recent {
			log.Printf("recent: %s %s close=%.2f volume=%d",
				b.Symbol, b.Date.Format("2006-01-02"), b.Close, b.Volume)
		}
	}
	log.Println("ingest ok")
}
