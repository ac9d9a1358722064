package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/trendplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendplan-backend/internal/auth"
	"github.com/heartmarshall/trendplan-backend/internal/config"
	"github.com/heartmarshall/trendplan-backend/internal/transport/middleware"
	"github.com/heartmarshall/trendplan-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database (migrating it when auto_migrate is set), wires the services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("trend_source", cfg.TrendSource.Kind),
	)

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svcs, err := NewServices(cfg, pool, logger)
	if err != nil {
		return err
	}

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(Version,
			rest.Check{Name: "database", Critical: true, Ping: pool.Ping},
			svcs.TrendCheck,
		),
		Calendar:    rest.NewCalendarHandler(svcs.Calendar, logger),
		Preferences: rest.NewPreferencesHandler(svcs.Preferences, logger),
		Alerts:      rest.NewAlertHandler(svcs.Alerts, logger),
		Trends:      rest.NewTrendHandler(svcs.Trends, logger),
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.ClockSkew)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.ClientIP,
		middleware.Auth(jwtManager),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
		mws = append(mws, limiter.Middleware())
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(handlers, mws...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := NewMigrator(dsn, logger)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
