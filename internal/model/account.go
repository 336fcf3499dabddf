package model

import "strconv"

// Account is a participant as shown to the user: its index in the ledger,
// an optional display name and its net balance in cents.
type Account struct {
	Index   uint8
	Name    string
	Balance int32
}

// Label returns the display name, falling back to the index.
func (a Account) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return "#" + strconv.Itoa(int(a.Index))
}
