package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/netpay/internal/constants"
)

type Config struct {
	Ledger     LedgerConfig `mapstructure:"ledger"`
	Output     OutputConfig `mapstructure:"output"`
	Log        LogConfig    `mapstructure:"log"`
	ConfigPath string       `mapstructure:"-"`
}

type LedgerConfig struct {
	MaxAccounts int `mapstructure:"max_accounts" validate:"min=1,max=255"`
}

type OutputConfig struct {
	Format   string `mapstructure:"format" validate:"oneof=raw hex base64"`
	Currency string `mapstructure:"currency" validate:"omitempty,len=3,alpha"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=colorful json"`
}

func NewDefault() *Config {
	return &Config{
		Ledger: LedgerConfig{MaxAccounts: constants.MaxAccounts},
		Output: OutputConfig{Format: constants.FormatHex, Currency: constants.DefaultCurrency},
		Log:    LogConfig{Level: "info", Format: "colorful"},
	}
}

// Validate checks the decoded config against its field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid config value for '%s': failed '%s' check", e.Namespace(), e.Tag())
		}
		return err
	}
	return nil
}
