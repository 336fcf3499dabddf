package views

import (
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/utils"
	"github.com/pterm/pterm"
)

// RenderPayments prints the payments as a table. label resolves an account
// index to its display name and may be nil.
func RenderPayments(payments []model.Payment, label func(uint8) string, currency string) error {
	if label == nil {
		label = func(i uint8) string { return model.Account{Index: i}.Label() }
	}

	pterm.DefaultSection.Println("Payments")

	if len(payments) == 0 {
		pterm.Success.Println("Nothing to pay, every account is already settled")
		return nil
	}

	tableData := pterm.TableData{{"#", "From", "Amount", "To"}}
	for i, p := range payments {
		tableData = append(tableData, []string{
			pterm.Sprint(i + 1),
			pterm.Red(label(p.Payer)),
			utils.FormatWithCurrency(int64(p.Amount), currency),
			pterm.Green(label(p.Payee)),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
