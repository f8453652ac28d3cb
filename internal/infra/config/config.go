package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	App      AppSettings      `mapstructure:"app"`
	Postgres PostgresSettings `mapstructure:"postgres"`
	Redis    RedisSettings    `mapstructure:"redis"`
	Session  SessionSettings  `mapstructure:"session"`
	Admin    AdminSettings    `mapstructure:"admin"`
	Argon2   Argon2Settings   `mapstructure:"argon2"`
}

type AppSettings struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, release-mode router).
func (a AppSettings) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

type PostgresSettings struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	User              string        `mapstructure:"user"`
	Password          string        `mapstructure:"password"`
	Database          string        `mapstructure:"database"`
	SSLMode           string        `mapstructure:"ssl_mode"`
	MaxConns          int32         `mapstructure:"max_conns"`
	MinConns          int32         `mapstructure:"min_conns"`
	MaxConnLifetime   time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   time.Duration `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `mapstructure:"health_check_period"`
}

// RedisSettings configures the optional session cache. The cache is disabled
// by default; the service runs fully against Postgres without it.
type RedisSettings struct {
	Enabled            bool          `mapstructure:"enabled"`
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	DB                 int           `mapstructure:"db"`
	Password           string        `mapstructure:"password"`
	TLSEnabled         bool          `mapstructure:"tls_enabled"`
	SessionCachePrefix string        `mapstructure:"session_cache_prefix"`
	SessionCacheTTL    time.Duration `mapstructure:"session_cache_ttl"`
}

// SessionSettings configures the cookie-based login sessions.
type SessionSettings struct {
	TTL          time.Duration `mapstructure:"ttl"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	PurgePeriod  time.Duration `mapstructure:"purge_period"`
}

// AdminSettings governs first-run bootstrap and the password policy.
type AdminSettings struct {
	DefaultPassword   string `mapstructure:"default_password"`
	SeedDemoData      bool   `mapstructure:"seed_demo_data"`
	PasswordMinLength int    `mapstructure:"password_min_length"`
}

// Argon2Settings configures Argon2id password hashing parameters
type Argon2Settings struct {
	Memory      uint32 `mapstructure:"memory"`
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
	SaltLength  uint32 `mapstructure:"salt_length"`
	KeyLength   uint32 `mapstructure:"key_length"`
}

func Load() (*AppConfig, error) {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("JOBBOARD")

	setDefaults(v)

	if err := bindEnvs(v, []string{
		"app.name",
		"app.env",
		"app.host",
		"app.port",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.database",
		"postgres.ssl_mode",
		"postgres.max_conns",
		"postgres.min_conns",
		"postgres.max_conn_lifetime",
		"postgres.max_conn_idle_time",
		"postgres.health_check_period",
		"redis.enabled",
		"redis.host",
		"redis.port",
		"redis.db",
		"redis.password",
		"redis.tls_enabled",
		"redis.session_cache_prefix",
		"redis.session_cache_ttl",
		"session.ttl",
		"session.cookie_name",
		"session.cookie_domain",
		"session.purge_period",
		"admin.default_password",
		"admin.seed_demo_data",
		"admin.password_min_length",
		"argon2.memory",
		"argon2.iterations",
		"argon2.parallelism",
		"argon2.salt_length",
		"argon2.key_length",
	}); err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "job-board-app")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 5000)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "jobboard")
	v.SetDefault("postgres.password", "jobboard_password")
	v.SetDefault("postgres.database", "jobboard")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.max_conn_lifetime", "60m")
	v.SetDefault("postgres.max_conn_idle_time", "15m")
	v.SetDefault("postgres.health_check_period", "30s")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.tls_enabled", false)
	v.SetDefault("redis.session_cache_prefix", "jobboard:session")
	v.SetDefault("redis.session_cache_ttl", "10m")

	// One week, matching the cookie max-age.
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.cookie_name", "jb_session")
	v.SetDefault("session.cookie_domain", "")
	v.SetDefault("session.purge_period", "1h")

	v.SetDefault("admin.default_password", "admin123")
	v.SetDefault("admin.seed_demo_data", true)
	v.SetDefault("admin.password_min_length", 6)

	v.SetDefault("argon2.memory", 65536) // 64 MB
	v.SetDefault("argon2.iterations", 3)
	v.SetDefault("argon2.parallelism", 4)
	v.SetDefault("argon2.salt_length", 16)
	v.SetDefault("argon2.key_length", 32)
}

func bindEnvs(v *viper.Viper, keys []string) error {
	for _, key := range keys {
		envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, "JOBBOARD_"+envKey, envKey); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}
