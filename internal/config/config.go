package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Ledger LedgerConfig `mapstructure:"ledger"`
	UI     UIConfig     `mapstructure:"ui"`
	Note   NoteConfig   `mapstructure:"note"`
	Log    LogConfig    `mapstructure:"log"`
}

// LedgerConfig holds the demo account's starting state.
type LedgerConfig struct {
	OpeningBalance  string `mapstructure:"opening_balance"`
	SeedAmount      string `mapstructure:"seed_amount"`
	SeedDescription string `mapstructure:"seed_description"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	Timezone       string        `mapstructure:"timezone"`
	Locale         string        `mapstructure:"locale"`
	Banner         string        `mapstructure:"banner"`
	ClockInterval  time.Duration `mapstructure:"clock_interval"`
	RevealInterval time.Duration `mapstructure:"reveal_interval"`
}

// NoteConfig points at an optional note fixture and chain state overrides.
type NoteConfig struct {
	Path      string `mapstructure:"path"`
	StateSize int64  `mapstructure:"state_size"`
	StateRoot string `mapstructure:"state_root"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix RETROBANK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ledger.opening_balance", "1000.00")
	v.SetDefault("ledger.seed_amount", "500")
	v.SetDefault("ledger.seed_description", "Initial deposit")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("ui.banner", "RETRO-BANK TERMINAL v2.1 READY...")
	v.SetDefault("ui.clock_interval", time.Second)
	v.SetDefault("ui.reveal_interval", 100*time.Millisecond)
	v.SetDefault("note.path", "")
	v.SetDefault("note.state_size", 0)
	v.SetDefault("note.state_root", "")
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "retrobank.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RETROBANK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "retrobank"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RETROBANK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; a missing explicit RETROBANK_CONFIG is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the dashboard cannot start with.
func (c Config) Validate() error {
	if _, err := c.OpeningBalance(); err != nil {
		return err
	}
	if _, err := c.SeedAmount(); err != nil {
		return err
	}
	if c.UI.ClockInterval <= 0 {
		return fmt.Errorf("ui.clock_interval must be positive, got %s", c.UI.ClockInterval)
	}
	if c.UI.RevealInterval <= 0 {
		return fmt.Errorf("ui.reveal_interval must be positive, got %s", c.UI.RevealInterval)
	}
	if c.Note.StateSize < 0 {
		return fmt.Errorf("note.state_size must not be negative, got %d", c.Note.StateSize)
	}
	return nil
}

// OpeningBalance parses ledger.opening_balance.
func (c Config) OpeningBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(c.Ledger.OpeningBalance))
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger.opening_balance: %w", err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("ledger.opening_balance must not be negative, got %s", d)
	}
	return d, nil
}

// SeedAmount parses ledger.seed_amount. An empty value means no seed.
func (c Config) SeedAmount() (decimal.Decimal, error) {
	s := strings.TrimSpace(c.Ledger.SeedAmount)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger.seed_amount: %w", err)
	}
	return d, nil
}

// Location resolves ui.timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	switch strings.TrimSpace(c.UI.Timezone) {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return time.Local, fmt.Errorf("load timezone %q: %w", c.UI.Timezone, err)
	}
	return loc, nil
}
