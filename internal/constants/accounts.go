package constants

import "math"

const (
	// MaxAccounts is bounded by the single byte that carries an index on the wire.
	MaxAccounts = math.MaxUint8

	// MaxTx keeps MaxAccounts * amount inside an int32 balance.
	MaxTx = math.MaxInt32 / MaxAccounts
)

const (
	MaxNameLen   = 32
	CentsPerUnit = 100
)
