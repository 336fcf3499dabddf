package views

import (
	"fmt"

	"github.com/hance08/netpay/internal/service"
	"github.com/hance08/netpay/internal/ui"
	"github.com/pterm/pterm"
)

func RenderSettlementSummary(s *service.Settlement, debts int) error {
	pterm.Println()
	ui.PrintL2Title("Settlement")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Run", s.ID.String()},
		{"Accounts", fmt.Sprintf("%d", s.Accounts)},
		{"Recorded debts", fmt.Sprintf("%d", debts)},
		{"Payments", fmt.Sprintf("%d", len(s.Payments))},
		{"Encoded size", fmt.Sprintf("%d bytes", len(s.Encoded))},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		return err
	}

	if debts > len(s.Payments) {
		pterm.Success.Printf("%d debts reduced to %d payments\n", debts, len(s.Payments))
	}
	return nil
}
