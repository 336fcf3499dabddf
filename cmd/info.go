package cmd

import (
	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/ui/views"
	"github.com/hance08/netpay/internal/utils"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration and the payment wire format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		AppDataDir:   getAppDataDirOrUnknown(),
		Currency:     cfg.Output.Currency,
		OutputFormat: cfg.Output.Format,
		LogLevel:     cfg.Log.Level,
		MaxAccounts:  cfg.Ledger.MaxAccounts,
		MaxAmount:    utils.FormatWithCurrency(constants.MaxTx, cfg.Output.Currency),
		RecordSize:   constants.RecordSize,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
