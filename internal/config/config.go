package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Drafts    DraftsConfig    `yaml:"drafts"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Notes     NotesConfig     `yaml:"notes"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
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
}

// AuthConfig holds bearer token validation settings. Tokens are issued
// elsewhere; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"partsdesk"`
}

// UpstreamConfig holds settings for the order and parts API.
type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url" env:"UPSTREAM_BASE_URL" env-required:"true"`
	Token   string        `yaml:"token"    env:"UPSTREAM_TOKEN"`
	Timeout time.Duration `yaml:"timeout"  env:"UPSTREAM_TIMEOUT"  env-default:"15s"`
	// BestEffortLookups makes year and picture lookups return empty results
	// instead of errors when the API fails.
	BestEffortLookups bool `yaml:"best_effort_lookups" env:"UPSTREAM_BEST_EFFORT_LOOKUPS" env-default:"true"`
}

// KafkaConfig holds domain event publishing settings.
type KafkaConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"KAFKA_ENABLED"       env-default:"false"`
	BrokersRaw   string        `yaml:"brokers"       env:"KAFKA_BROKERS"       env-default:"localhost:9092"`
	Topic        string        `yaml:"topic"         env:"KAFKA_TOPIC"         env-default:"partsdesk.events"`
	ClientID     string        `yaml:"client_id"     env:"KAFKA_CLIENT_ID"     env-default:"partsdesk-backend"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"5s"`
	MaxRetries   int           `yaml:"max_retries"   env:"KAFKA_MAX_RETRIES"   env-default:"3"`
}

// Brokers splits the comma-separated broker list.
func (k KafkaConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(k.BrokersRaw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// DraftsConfig holds settings for the embedded note draft store.
type DraftsConfig struct {
	Path        string        `yaml:"path"         env:"DRAFTS_PATH"         env-default:"./data/drafts.db"`
	OpenTimeout time.Duration `yaml:"open_timeout" env:"DRAFTS_OPEN_TIMEOUT" env-default:"1s"`
}

// SnapshotConfig holds settings for the in-memory order snapshot.
type SnapshotConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"SNAPSHOT_REFRESH_INTERVAL" env-default:"1m"`
	MaxOrders       int           `yaml:"max_orders"       env:"SNAPSHOT_MAX_ORDERS"       env-default:"20000"`
}

// NotesConfig holds settings for the in-memory note ledgers.
type NotesConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl"       env:"NOTES_IDLE_TTL"       env-default:"30m"`
	EvictInterval time.Duration `yaml:"evict_interval" env:"NOTES_EVICT_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"600"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
