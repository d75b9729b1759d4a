// Package config loads runtime configuration from the environment.
package config

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port           int
	DBPath         string
	OpeningBalance decimal.Decimal
}

// Load reads configuration from an optional .env file and the process
// environment. Every value has a working default; there is no required
// configuration.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("REGISTER_PORT", 8080)
	v.SetDefault("REGISTER_DB", "register.db")
	// Default opening float in the drawer before the shift.
	v.SetDefault("REGISTER_OPENING_BALANCE", "73430")

	if err := v.ReadInConfig(); err != nil {
		slog.Debug("no .env file, using environment and defaults", "error", err)
	}

	opening, err := decimal.NewFromString(v.GetString("REGISTER_OPENING_BALANCE"))
	if err != nil || opening.IsNegative() {
		slog.Warn("invalid REGISTER_OPENING_BALANCE, using 0", "value", v.GetString("REGISTER_OPENING_BALANCE"))
		opening = decimal.Zero
	}

	return &Config{
		Port:           v.GetInt("REGISTER_PORT"),
		DBPath:         v.GetString("REGISTER_DB"),
		OpeningBalance: opening,
	}
}
