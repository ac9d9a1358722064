// Command generate runs one calendar generation for a user outside the HTTP
// API. It is intended for cron jobs and backfills.
//
// Flags:
//
//	--user       user ID (required)
//	--today      plan as if today were this date (YYYY-MM-DD, default: now)
//	--horizon    horizon in days (default: scheduler.default_horizon_days)
//	--overwrite  remove generated suggestions in the horizon first
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendplan-backend/internal/app"
	"github.com/heartmarshall/trendplan-backend/internal/config"
	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar"
	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "user ID")
	todayFlag := flag.String("today", "", "plan as if today were this date (YYYY-MM-DD)")
	horizonFlag := flag.Int("horizon", 0, "horizon in days (default: scheduler.default_horizon_days)")
	overwriteFlag := flag.Bool("overwrite", false, "remove generated suggestions in the horizon first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		logger.Error("invalid --user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := svcs.Calendar
	if *todayFlag != "" {
		today, err := domain.ParseDate(*todayFlag)
		if err != nil {
			logger.Error("invalid --today", slog.String("error", err.Error()))
			os.Exit(1)
		}
		// Noon UTC keeps the date stable for any user timezone offset up to 12h.
		fixed := today.Add(12 * time.Hour)
		svc = svc.WithClock(func() time.Time { return fixed })
	}

	input := calendar.GenerateInput{Overwrite: *overwriteFlag}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "horizon" {
			input.HorizonDays = horizonFlag
		}
	})

	result, err := svc.Generate(ctxutil.WithUserID(ctx, userID), input)
	if err != nil {
		logger.Error("generate failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		logger.Warn("generate warning", slog.String("warning", w))
	}
	logger.Info("generate completed",
		slog.String("user_id", userID.String()),
		slog.String("from", domain.FormatDate(result.From)),
		slog.String("to", domain.FormatDate(result.To)),
		slog.Int("created", len(result.Entries)),
		slog.Int("removed", result.Removed),
		slog.Int("topic_shortfall", result.Report.TopicShortfall),
		slog.Int("capacity_shortfall", result.Report.CapacityShortfall),
	)
}
