package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"chorebank"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"chorebank"`
	}

	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string        `envconfig:"REDIS_PASSWORD" default:""`
		TTL      time.Duration `envconfig:"REDIS_CACHE_TTL" default:"1h"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	JWT struct {
		Secret         string        `envconfig:"JWT_SECRET" default:"secret_key"`
		AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"30m"`
		InviteTokenTTL time.Duration `envconfig:"INVITE_TOKEN_TTL" default:"24h"`
	}

	Rates struct {
		Transfer string `envconfig:"TRANSFER_RATE" default:"0.7"`
		Purchase string `envconfig:"PURCHASE_RATE" default:"0.8"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// TransferRate is the payout rate applied to peer transfers.
func (c *Config) TransferRate() (decimal.Decimal, error) {
	return decimal.NewFromString(c.Rates.Transfer)
}

// PurchaseRate is the payout rate applied to product purchases.
func (c *Config) PurchaseRate() (decimal.Decimal, error) {
	return decimal.NewFromString(c.Rates.Purchase)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
