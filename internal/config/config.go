package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Mail      MailConfig      `yaml:"mail"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the leaderboard store connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuthConfig holds token, hashing and account-protection settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"typespeed"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	ResetTokenTTL    time.Duration `yaml:"reset_token_ttl"    env:"AUTH_RESET_TOKEN_TTL"    env-default:"1h"`
	MaxFailedLogins  int           `yaml:"max_failed_logins"  env:"AUTH_MAX_FAILED_LOGINS"  env-default:"5"`
	LockoutDuration  time.Duration `yaml:"lockout_duration"   env:"AUTH_LOCKOUT_DURATION"   env-default:"15m"`
}

// MailConfig holds outgoing mail settings. An empty SMTPHost switches the
// dispatcher to log-only delivery.
type MailConfig struct {
	SMTPHost     string        `yaml:"smtp_host"     env:"MAIL_SMTP_HOST"`
	SMTPPort     int           `yaml:"smtp_port"     env:"MAIL_SMTP_PORT"     env-default:"587"`
	Username     string        `yaml:"username"      env:"MAIL_USERNAME"`
	Password     string        `yaml:"password"      env:"MAIL_PASSWORD"`
	From         string        `yaml:"from"          env:"MAIL_FROM"          env-default:"no-reply@typespeed.local"`
	FrontendURL  string        `yaml:"frontend_url"  env:"FRONTEND_URL"       env-default:"http://localhost:3000"`
	QueueSize    int           `yaml:"queue_size"    env:"MAIL_QUEUE_SIZE"    env-default:"100"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"MAIL_MAX_ATTEMPTS"  env-default:"3"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"MAIL_RETRY_BACKOFF" env-default:"2s"`
	SendTimeout  time.Duration `yaml:"send_timeout"  env:"MAIL_SEND_TIMEOUT"  env-default:"15s"`
}

// RateLimitConfig holds per-IP limits for the credential endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SMTPEnabled reports whether real SMTP delivery is configured.
func (c MailConfig) SMTPEnabled() bool {
	return strings.TrimSpace(c.SMTPHost) != ""
}

// ResetLink builds the frontend URL that redeems the given raw reset token.
func (c MailConfig) ResetLink(token string) string {
	return strings.TrimRight(c.FrontendURL, "/") + "/reset-password/" + token
}
