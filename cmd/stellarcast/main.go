package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/stellarcast/config"
	"github.com/alejandrodnm/stellarcast/internal/adapters/notify"
	"github.com/alejandrodnm/stellarcast/internal/adapters/storage"
	"github.com/alejandrodnm/stellarcast/internal/adapters/wallet"
	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/ports"
	"github.com/alejandrodnm/stellarcast/internal/seed"
	"github.com/alejandrodnm/stellarcast/internal/session"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	seedPath := flag.String("seed", "", "seed catalog path (overrides config)")
	balance := flag.Float64("balance", 0, "starting XLM balance (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *seedPath != "" {
		cfg.Session.SeedFile = *seedPath
	}
	if *balance > 0 {
		cfg.Wallet.StartingBalance = *balance
	}
	setupLogger(cfg.Log)

	slog.Info("stellarcast starting",
		"config", *configPath,
		"storage", cfg.Storage.Driver,
		"seed", cfg.Session.SeedFile,
		"starting_balance", cfg.Wallet.StartingBalance,
	)

	markets, err := seed.Load(cfg.Session.SeedFile)
	if err != nil {
		slog.Error("failed to load seed catalog", "err", err)
		os.Exit(1)
	}

	store, err := openStore(cfg.Storage, markets)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "driver", cfg.Storage.Driver)
		os.Exit(1)
	}
	defer store.markets.Close()

	w := wallet.NewHorizon(wallet.Config{
		AccountID:       cfg.Wallet.AccountID,
		StartingBalance: cfg.Wallet.StartingBalance,
		Latency:         cfg.WalletLatency(),
		FailConnect:     cfg.Wallet.FailConnect,
	})

	sess := session.New(store.markets, store.positions, w)
	console := notify.NewConsole()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runREPL(ctx, sess, console, os.Stdin, os.Stdout); err != nil {
		slog.Error("console exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("stellarcast stopped cleanly")
}

// stores bundles the two ports one adapter instance serves.
type stores struct {
	markets   ports.MarketStore
	positions ports.PositionStore
}

// openStore builds the configured store, seeded with the demo catalog.
// The sqlite store only gets the seeds when its markets table is empty,
// so a file-backed DSN keeps its state across runs.
func openStore(cfg config.StorageConfig, markets []domain.Market) (stores, error) {
	switch cfg.Driver {
	case "sqlite":
		st, err := storage.NewSQLite(cfg.DSN)
		if err != nil {
			return stores{}, err
		}
		ctx := context.Background()
		n, err := st.Count(ctx)
		if err != nil {
			st.Close()
			return stores{}, err
		}
		if n == 0 {
			for _, m := range markets {
				if err := st.Add(ctx, m); err != nil {
					st.Close()
					return stores{}, err
				}
			}
		}
		return stores{markets: st, positions: st}, nil

	case "memory", "":
		st := storage.NewMemory(markets)
		return stores{markets: st, positions: st}, nil

	default:
		return stores{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
