// Package settle turns a zero-sum balance vector into a short list of payments.
//
// The reduction is greedy: the biggest debtor pays the biggest creditor as much
// as one of them needs to reach zero, and this repeats until nobody is owed
// anything. Each step zeroes at least one account, so N accounts settle in at
// most N-1 payments. The result is not guaranteed to be the global minimum.
package settle

import (
	"github.com/hance08/netpay/internal/model"
)

// Settle computes the payments that zero out balances. The input is copied
// and never modified.
func Settle(balances []int32) []model.Payment {
	payments := make([]model.Payment, 0)
	if len(balances) < 2 {
		return payments
	}

	work := make([]int32, len(balances))
	copy(work, balances)

	for {
		p, ok := Step(work)
		if !ok {
			return payments
		}
		payments = append(payments, p)
	}
}

// Step performs one reduction on work in place and returns the payment it
// made. It returns false once no debtor/creditor pair is left.
func Step(work []int32) (model.Payment, bool) {
	if len(work) < 2 {
		return model.Payment{}, false
	}

	minIdx, maxIdx := Extremes(work)
	debt, credit := int64(work[minIdx]), int64(work[maxIdx])
	if debt >= 0 || credit <= 0 {
		return model.Payment{}, false
	}

	transfer := -debt
	if credit < transfer {
		transfer = credit
	}

	work[minIdx] += int32(transfer)
	work[maxIdx] -= int32(transfer)

	return model.Payment{
		Payer:  uint8(minIdx),
		Amount: int32(transfer),
		Payee:  uint8(maxIdx),
	}, true
}

// Extremes returns the indexes of the smallest and largest balance.
// Ties go to the lowest index.
func Extremes(balances []int32) (minIdx, maxIdx int) {
	for i, b := range balances {
		if b < balances[minIdx] {
			minIdx = i
		}
		if b > balances[maxIdx] {
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}

// Apply returns balances after the payments have been made. A correct
// settlement leaves every entry at zero.
func Apply(balances []int32, payments []model.Payment) []int64 {
	out := make([]int64, len(balances))
	for i, b := range balances {
		out[i] = int64(b)
	}
	for _, p := range payments {
		if int(p.Payer) < len(out) {
			out[p.Payer] += int64(p.Amount)
		}
		if int(p.Payee) < len(out) {
			out[p.Payee] -= int64(p.Amount)
		}
	}
	return out
}
