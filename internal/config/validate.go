package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %s)", a.AccessTokenTTL)
	}
	if a.ResetTokenTTL <= 0 {
		return fmt.Errorf("reset_token_ttl must be > 0 (got %s)", a.ResetTokenTTL)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if a.MaxFailedLogins < 0 {
		return fmt.Errorf("max_failed_logins must be >= 0 (got %d)", a.MaxFailedLogins)
	}
	if a.MaxFailedLogins > 0 && a.LockoutDuration <= 0 {
		return fmt.Errorf("lockout_duration must be > 0 when lockout is enabled")
	}
	return nil
}

func (m *MailConfig) validate() error {
	u, err := url.Parse(m.FrontendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("frontend_url must be an absolute URL (got %q)", m.FrontendURL)
	}
	if m.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", m.QueueSize)
	}
	if m.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", m.MaxAttempts)
	}
	if m.SMTPEnabled() && m.From == "" {
		return fmt.Errorf("from is required when smtp_host is set")
	}
	return nil
}
