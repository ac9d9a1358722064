// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/app"
	"github.com/heartmarshall/trendplan-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dsn string, logger *slog.Logger) error {
	m, err := app.NewMigrator(dsn, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "status":
		return m.Status(ctx)
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
}
