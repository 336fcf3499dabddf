// Package ledger accumulates net balances from debt edges.
//
// A Ledger holds one signed balance per account: positive means the account is
// owed money, negative means it owes. Every recorded debt moves the same amount
// from the debtor to the creditor, so the balances always sum to zero.
package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/validation"
)

type Ledger struct {
	balances []int32
}

// New allocates a ledger of n zeroed balances.
func New(n int) (*Ledger, error) {
	if err := validation.CheckRange(int64(n), "u8", constants.MaxAccounts); err != nil {
		return nil, err
	}
	return &Ledger{balances: make([]int32, n)}, nil
}

// FromValue builds a ledger from an untyped account count, as received from
// flags, YAML or JSON.
func FromValue(val any) (*Ledger, error) {
	n, err := validation.AccountCount(val)
	if err != nil {
		return nil, err
	}
	return New(n)
}

// RecordDebt records that debtor owes creditor amount cents.
// Nothing is changed unless every check passes.
func (l *Ledger) RecordDebt(debtor, creditor int, amount int64) error {
	n := len(l.balances)
	if err := validation.CheckIndex(debtor, n); err != nil {
		return err
	}
	if err := validation.CheckIndex(creditor, n); err != nil {
		return err
	}
	if err := validation.Amount(amount); err != nil {
		return err
	}

	// owing yourself nets out
	if debtor == creditor {
		return nil
	}

	nextDebtor := int64(l.balances[debtor]) - amount
	nextCreditor := int64(l.balances[creditor]) + amount
	if nextDebtor < math.MinInt32 || nextCreditor > math.MaxInt32 {
		return fmt.Errorf("debt %d -> %d: %w", debtor, creditor,
			&model.ValueOverflowError{Type: "i32 balance", Max: math.MaxInt32})
	}

	l.balances[debtor] = int32(nextDebtor)
	l.balances[creditor] = int32(nextCreditor)
	return nil
}

// Balances returns a copy of the current balances.
func (l *Ledger) Balances() []int32 {
	out := make([]int32, len(l.balances))
	copy(out, l.balances)
	return out
}

// Balance returns the balance of account i.
func (l *Ledger) Balance(i int) (int32, error) {
	if err := validation.CheckIndex(i, len(l.balances)); err != nil {
		return 0, err
	}
	return l.balances[i], nil
}

func (l *Ledger) Len() int {
	return len(l.balances)
}

// Sum is always zero for a ledger built through RecordDebt.
func (l *Ledger) Sum() int64 {
	var total int64
	for _, b := range l.balances {
		total += int64(b)
	}
	return total
}

// Settled reports whether every balance is zero.
func (l *Ledger) Settled() bool {
	for _, b := range l.balances {
		if b != 0 {
			return false
		}
	}
	return true
}

func (l *Ledger) Clone() *Ledger {
	return &Ledger{balances: l.Balances()}
}

// Render returns one "<index>: <balance>" line per account.
func (l *Ledger) Render() string {
	var sb strings.Builder
	for i, b := range l.balances {
		fmt.Fprintf(&sb, "%d: %d\n", i, b)
	}
	return sb.String()
}

func (l *Ledger) String() string {
	return l.Render()
}
