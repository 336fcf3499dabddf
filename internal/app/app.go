package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/netpay/internal/config"
	"github.com/hance08/netpay/internal/logging"
	"github.com/hance08/netpay/internal/service"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Logger  *pterm.Logger
	Service *service.Service
}

// NewApp validates config, builds the logger and core services, then return App entity
func NewApp(cfg *config.Config) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc := service.NewService(cfg, logger)

	cleanup := func() {
		logger.Trace("shutting down")
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".netpay"), nil
	}

	return filepath.Join(configDir, "netpay"), nil
}
