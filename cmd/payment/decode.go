package payment

import (
	"fmt"
	"io"
	"os"

	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/codec"
	"github.com/hance08/netpay/internal/ui/views"
	"github.com/spf13/cobra"
)

type decodeFlags struct {
	Format string
	Table  bool
}

type DecodeCommandRunner struct {
	app   *app.App
	flags *decodeFlags
}

func NewDecodeCmd(a *app.App) *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode an encoded payment list",
		Long: `Decode a payment list written by 'netpay settle' and print one
"<payer>: <amount> -> <payee>" line per payment. Reads stdin when no file
(or '-') is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DecodeCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run(cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", "", "Encoding of the input (raw, hex, base64)")
	cmd.Flags().BoolVar(&flags.Table, "table", false, "Show the payments as a table")

	return cmd
}

func (r *DecodeCommandRunner) Run(out io.Writer, args []string) error {
	var (
		input []byte
		err   error
	)
	if len(args) == 0 || args[0] == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	payments, err := r.app.Service.Settlement.DecodeText(input, r.flags.Format)
	if err != nil {
		return err
	}

	if r.flags.Table {
		return views.RenderPayments(payments, nil, r.app.Config.Output.Currency)
	}

	for _, line := range codec.Render(payments) {
		fmt.Fprintln(out, line)
	}
	return nil
}
