package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/service"
	"github.com/hance08/netpay/internal/validation"
)

// Select lists longer than this are replaced by a typed index prompt.
const maxSelectAccounts = 12

type WizardResult struct {
	Accounts int
	Names    []string
	Debts    []service.DebtInput
}

// Label returns the display name chosen for account i.
func (w *WizardResult) Label(i uint8) string {
	acc := model.Account{Index: i}
	if int(i) < len(w.Names) {
		acc.Name = w.Names[i]
	}
	return acc.Label()
}

// RunDebtWizard asks for the accounts and then for debts until the user stops.
func RunDebtWizard(currency string) (*WizardResult, error) {
	countStr, err := PromptInput("How many accounts take part?", "3", validation.ValidateAccountCount)
	if err != nil {
		return nil, err
	}
	n, err := validation.AccountCount(countStr)
	if err != nil {
		return nil, err
	}

	result := &WizardResult{Accounts: n, Names: make([]string, n)}

	for i := 0; i < n; i++ {
		name, err := PromptInput(
			fmt.Sprintf("Name for account #%d (optional):", i),
			"",
			validation.ValidateAccountName,
		)
		if err != nil {
			return nil, err
		}
		result.Names[i] = strings.TrimSpace(name)
	}

	options := make([]huh.Option[int], 0, n)
	for i := 0; i < n; i++ {
		options = append(options, huh.NewOption(result.Label(uint8(i)), i))
	}

	for {
		debtor, err := pickAccount("Who owes money?", options, 0)
		if err != nil {
			return nil, err
		}

		creditor, err := pickAccount("Who is owed?", options, (debtor+1)%n)
		if err != nil {
			return nil, err
		}

		amount, err := PromptAmount(
			fmt.Sprintf("Amount (%s):", currency),
			"e.g. 12.50",
			validation.ValidateAmount,
		)
		if err != nil {
			return nil, err
		}

		result.Debts = append(result.Debts, service.DebtInput{
			Debtor:   debtor,
			Creditor: creditor,
			Amount:   amount,
		})

		more, err := PromptConfirm("Add another debt? ("+strconv.Itoa(len(result.Debts))+" so far)", true)
		if err != nil {
			return nil, err
		}
		if !more {
			return result, nil
		}
	}
}

func pickAccount(message string, options []huh.Option[int], defaultValue int) (int, error) {
	if len(options) <= maxSelectAccounts {
		return PromptSelect(message, options, defaultValue)
	}

	input, err := PromptInput(
		fmt.Sprintf("%s (index 0-%d)", message, len(options)-1),
		strconv.Itoa(defaultValue),
		validation.ValidateIndexInput(len(options)),
	)
	if err != nil {
		return 0, err
	}
	return validation.Index(input, len(options))
}
