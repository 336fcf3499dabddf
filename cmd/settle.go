package cmd

import (
	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/ledger"
	"github.com/hance08/netpay/internal/sheet"
	"github.com/hance08/netpay/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type settleFlags struct {
	File   string
	Format string
	Output string
	Quiet  bool
	Force  bool
}

type SettleCommandRunner struct {
	app   *app.App
	flags *settleFlags
}

func NewSettleCmd(a *app.App) *cobra.Command {
	flags := &settleFlags{}

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Compute the payments that clear every debt in a sheet",
		Long: `Read a debt sheet, net every account to a single balance and print the
payments that bring every balance back to zero.

The payment list is also written in the fixed 6-byte wire format
(payer, big-endian int32 amount, payee) as raw bytes, hex or base64.`,
		Example: `  # Settle a sheet and print hex encoded payments
  netpay settle -f trip.yaml

  # Only write the encoded payments to a file
  netpay settle -f trip.yaml --format raw -o payments.bin -q`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &SettleCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Debt sheet to read (YAML, '-' for stdin)")
	cmd.Flags().StringVar(&flags.Format, "format", "", "Encoding of the payment list (raw, hex, base64)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the encoded payments to a file")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print the encoded payments")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Overwrite the output file without asking")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (r *SettleCommandRunner) Run() error {
	l, sh, err := loadLedger(r.app, r.flags.File)
	if err != nil {
		return err
	}

	return r.settle(l, sh)
}

func (r *SettleCommandRunner) settle(l *ledger.Ledger, sh *sheet.Sheet) error {
	result, err := r.app.Service.Settlement.Settle(l)
	if err != nil {
		return err
	}

	encoded, err := r.app.Service.Settlement.EncodeText(result, r.flags.Format)
	if err != nil {
		return err
	}

	if !r.flags.Quiet {
		currency := r.app.Config.Output.Currency
		accounts := r.app.Service.Ledger.Accounts(l, sh.Names)

		if err := views.NewBalanceListView(currency).Render(accounts); err != nil {
			return err
		}
		label := func(i uint8) string { return accounts[i].Label() }
		if err := views.RenderPayments(result.Payments, label, currency); err != nil {
			return err
		}
		if err := views.RenderSettlementSummary(result, len(sh.Debts)); err != nil {
			return err
		}
		pterm.Println()
	}

	format := r.flags.Format
	if format == "" {
		format = r.app.Config.Output.Format
	}
	if format != constants.FormatRaw && (r.flags.Output == "" || r.flags.Output == "-") {
		encoded = append(encoded, '\n')
	}

	if err := writeOutput(r.flags.Output, encoded, r.flags.Force); err != nil {
		return err
	}

	if r.flags.Output != "" && r.flags.Output != "-" && !r.flags.Quiet {
		pterm.Success.Printf("Wrote %d payments to %s\n", len(result.Payments), r.flags.Output)
	}
	return nil
}
