package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Upstream.validate(); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}

	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers()) == 0 {
			return fmt.Errorf("kafka.brokers must list at least one broker when kafka is enabled")
		}
		if strings.TrimSpace(c.Kafka.Topic) == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	if strings.TrimSpace(c.Drafts.Path) == "" {
		return fmt.Errorf("drafts.path is required")
	}

	if c.Snapshot.RefreshInterval <= 0 {
		return fmt.Errorf("snapshot.refresh_interval must be > 0 (got %v)", c.Snapshot.RefreshInterval)
	}
	if c.Snapshot.MaxOrders <= 0 {
		return fmt.Errorf("snapshot.max_orders must be > 0 (got %d)", c.Snapshot.MaxOrders)
	}

	if c.Notes.IdleTTL <= 0 {
		return fmt.Errorf("notes.idle_ttl must be > 0 (got %v)", c.Notes.IdleTTL)
	}
	if c.Notes.EvictInterval <= 0 {
		return fmt.Errorf("notes.evict_interval must be > 0 (got %v)", c.Notes.EvictInterval)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (u *UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", u.BaseURL)
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	return nil
}
