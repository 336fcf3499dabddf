// Package logging builds the pterm structured logger shared by the services.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hance08/netpay/internal/config"
	"github.com/pterm/pterm"
)

// New returns a logger writing to w at the configured level and format.
func New(cfg config.LogConfig, w io.Writer) (*pterm.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(w)

	if strings.EqualFold(cfg.Format, "json") {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}

func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("not a valid log level: %q", s)
	}
}
