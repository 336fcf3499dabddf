package views

import (
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/ui"
	"github.com/hance08/netpay/internal/utils"
	"github.com/pterm/pterm"
)

type BalanceListView struct {
	Currency string
}

func NewBalanceListView(currency string) *BalanceListView {
	return &BalanceListView{Currency: currency}
}

func (v *BalanceListView) Render(accounts []model.Account) error {
	tableData := pterm.TableData{{"Index", "Account", "Net Balance", "Role"}}

	var debtors, creditors int
	for _, acc := range accounts {
		bal := int64(acc.Balance)

		role := "settled"
		switch {
		case bal < 0:
			role = "debtor"
			debtors++
		case bal > 0:
			role = "creditor"
			creditors++
		}

		tableData = append(tableData, []string{
			pterm.Sprint(acc.Index),
			ui.ColorByBalance(bal, acc.Label()),
			ui.ColorByBalance(bal, utils.FormatWithCurrency(bal, v.Currency)),
			ui.ColorByBalance(bal, role),
		})
	}

	pterm.DefaultSection.Println("Net Balances")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, %d debtors, %d creditors\n", len(accounts), debtors, creditors)
	return nil
}
