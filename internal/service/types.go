package service

import (
	"github.com/google/uuid"
	"github.com/hance08/netpay/internal/model"
)

// DebtInput is a debt as received from the outside world. Indices may be any
// numeric value (YAML and JSON decode to float64 or int); Amount is a currency
// string such as "12.50".
type DebtInput struct {
	Debtor   any
	Creditor any
	Amount   string
}

// Settlement is the result of one settlement run.
type Settlement struct {
	ID       uuid.UUID
	Accounts int
	Balances []int32
	Payments []model.Payment
	Encoded  []byte
}

// Lines renders the payments as "<payer>: <amount> -> <payee>".
func (s *Settlement) Lines() []string {
	lines := make([]string, 0, len(s.Payments))
	for _, p := range s.Payments {
		lines = append(lines, p.String())
	}
	return lines
}
