package cmd

import (
	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/sheet"
	"github.com/hance08/netpay/internal/ui"
	"github.com/hance08/netpay/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type WizardCommandRunner struct {
	app    *app.App
	format string
}

func NewWizardCmd(a *app.App) *cobra.Command {
	runner := &WizardCommandRunner{app: a}

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Enter debts interactively and settle them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&runner.format, "format", "", "Encoding of the payment list (raw, hex, base64)")

	return cmd
}

func (r *WizardCommandRunner) Run() error {
	ui.PrintL1Title("Debt Wizard")

	result, err := prompts.RunDebtWizard(r.app.Config.Output.Currency)
	if err != nil {
		return err
	}

	l, err := r.app.Service.Ledger.Open(result.Accounts)
	if err != nil {
		return err
	}

	if err := r.app.Service.Ledger.RecordAll(l, result.Debts); err != nil {
		return err
	}

	sh := &sheet.Sheet{Accounts: result.Accounts, Names: result.Names}
	for _, d := range result.Debts {
		sh.Debts = append(sh.Debts, sheet.Debt{From: d.Debtor, To: d.Creditor, Amount: d.Amount})
	}

	settle := &SettleCommandRunner{
		app:   r.app,
		flags: &settleFlags{Format: r.format},
	}
	return settle.settle(l, sh)
}
