package payment

import (
	"github.com/hance08/netpay/internal/app"
	"github.com/spf13/cobra"
)

func NewPaymentCmd(a *app.App) *cobra.Command {
	paymentCmd := &cobra.Command{
		Use:   "payment",
		Short: "Inspect encoded payment lists",
		Long:  `Decode and display payment lists produced by 'netpay settle'.`,
	}

	paymentCmd.AddCommand(NewDecodeCmd(a))

	return paymentCmd
}
