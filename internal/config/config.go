package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	BankName   string `envconfig:"BANK_NAME" default:"Ledger Bank"`
	// ReportingCurrency is the default currency for bank-wide totals.
	ReportingCurrency string `envconfig:"REPORTING_CURRENCY" default:"RUB"`
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: no .env file loaded, using environment variables only: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
