package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	TrendSource TrendSourceConfig `yaml:"trend_source"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings. Tokens are issued
// elsewhere; this service only verifies them.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"trendplan"`
	ClockSkew time.Duration `yaml:"clock_skew" env:"AUTH_CLOCK_SKEW" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds API requests per client.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_REQUESTS_PER_SECOND" env-default:"10"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"20"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"            env-default:"10m"`
}

// SchedulerConfig holds calendar generation settings.
type SchedulerConfig struct {
	DefaultHorizonDays int     `yaml:"default_horizon_days" env:"SCHEDULER_DEFAULT_HORIZON_DAYS" env-default:"30"`
	MaxHorizonDays     int     `yaml:"max_horizon_days"     env:"SCHEDULER_MAX_HORIZON_DAYS"     env-default:"90"`
	WeightGrowth       float64 `yaml:"weight_growth"        env:"SCHEDULER_WEIGHT_GROWTH"        env-default:"0.5"`
	WeightViews        float64 `yaml:"weight_views"         env:"SCHEDULER_WEIGHT_VIEWS"         env-default:"0.3"`
	WeightDifficulty   float64 `yaml:"weight_difficulty"    env:"SCHEDULER_WEIGHT_DIFFICULTY"    env-default:"0.2"`
}

// Trend source kinds.
const (
	TrendSourceStatic = "static"
	TrendSourceHTTP   = "http"
)

// TrendSourceConfig selects and configures the trend feed.
type TrendSourceConfig struct {
	Kind              string        `yaml:"kind"                env:"TREND_SOURCE_KIND"                env-default:"static"`
	StaticPath        string        `yaml:"static_path"         env:"TREND_SOURCE_STATIC_PATH"`
	BaseURL           string        `yaml:"base_url"            env:"TREND_SOURCE_BASE_URL"`
	APIKey            string        `yaml:"api_key"             env:"TREND_SOURCE_API_KEY"`
	Timeout           time.Duration `yaml:"timeout"             env:"TREND_SOURCE_TIMEOUT"             env-default:"5s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"TREND_SOURCE_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"TREND_SOURCE_BURST"               env-default:"5"`
	MaxConcurrency    int           `yaml:"max_concurrency"     env:"TREND_SOURCE_MAX_CONCURRENCY"     env-default:"4"`
	BreakerFailures   uint32        `yaml:"breaker_failures"    env:"TREND_SOURCE_BREAKER_FAILURES"    env-default:"5"`
	BreakerOpenFor    time.Duration `yaml:"breaker_open_for"    env:"TREND_SOURCE_BREAKER_OPEN_FOR"    env-default:"30s"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
