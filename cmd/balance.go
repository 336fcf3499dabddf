package cmd

import (
	"fmt"

	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/ui/views"
	"github.com/spf13/cobra"
)

type balanceFlags struct {
	File  string
	Plain bool
}

type BalanceCommandRunner struct {
	app   *app.App
	flags *balanceFlags
}

func NewBalanceCmd(a *app.App) *cobra.Command {
	flags := &balanceFlags{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the net balance of every account in a sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &BalanceCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Debt sheet to read (YAML, '-' for stdin)")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print '<index>: <cents>' lines instead of a table")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (r *BalanceCommandRunner) Run() error {
	l, sh, err := loadLedger(r.app, r.flags.File)
	if err != nil {
		return err
	}

	if r.flags.Plain {
		fmt.Print(l.Render())
		return nil
	}

	accounts := r.app.Service.Ledger.Accounts(l, sh.Names)
	return views.NewBalanceListView(r.app.Config.Output.Currency).Render(accounts)
}
