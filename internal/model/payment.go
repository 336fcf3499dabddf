package model

import "fmt"

// Payment is a single settlement transfer: Payer sends Amount cents to Payee.
type Payment struct {
	Payer  uint8
	Amount int32
	Payee  uint8
}

func (p Payment) String() string {
	return fmt.Sprintf("%d: %d -> %d", p.Payer, p.Amount, p.Payee)
}
