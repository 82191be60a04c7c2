package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Companion.DefaultPageSize < 1 {
		return fmt.Errorf("companion.default_page_size must be >= 1 (got %d)", c.Companion.DefaultPageSize)
	}
	if c.Companion.MaxPageSize < c.Companion.DefaultPageSize {
		return fmt.Errorf("companion.max_page_size must be >= default_page_size (got %d < %d)",
			c.Companion.MaxPageSize, c.Companion.DefaultPageSize)
	}
	if c.Companion.DefaultHistoryLimit < 1 {
		return fmt.Errorf("companion.default_history_limit must be >= 1 (got %d)", c.Companion.DefaultHistoryLimit)
	}
	if c.Companion.MaxHistoryLimit < c.Companion.DefaultHistoryLimit {
		return fmt.Errorf("companion.max_history_limit must be >= default_history_limit (got %d < %d)",
			c.Companion.MaxHistoryLimit, c.Companion.DefaultHistoryLimit)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute < 1 {
		return fmt.Errorf("rate_limit.per_minute must be >= 1 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
