package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the portfolio API.
type Config struct {
	Port             string
	Environment      string
	DatabaseDriver   string
	DatabaseDSN      string
	StaticDir        string
	ProxyHeader      string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	RateLimitSweep   time.Duration
	RabbitMQURL      string
	RabbitMQExchange string
}

// Load reads configuration from environment variables, falling back to the
// defaults registered on v.
func Load(v *viper.Viper) Config {
	v.SetDefault("PORT", "9000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "data/portfolio.db")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("PROXY_HEADER", "")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("RATE_LIMIT_SWEEP", 5*time.Minute)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "portfolio")
	v.AutomaticEnv()

	return Config{
		Port:             strings.TrimPrefix(v.GetString("PORT"), ":"),
		Environment:      strings.ToLower(v.GetString("APP_ENV")),
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		StaticDir:        v.GetString("STATIC_DIR"),
		ProxyHeader:      v.GetString("PROXY_HEADER"),
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow:  v.GetDuration("RATE_LIMIT_WINDOW"),
		RateLimitSweep:   v.GetDuration("RATE_LIMIT_SWEEP"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Development reports whether error responses may include internal details.
func (c Config) Development() bool {
	return c.Environment == "development"
}
