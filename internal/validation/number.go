package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/model"
	"github.com/spf13/cast"
)

// CheckRange reports a ValueOverflowError when n falls outside [0, max].
// typeName names the target integer type in the error.
func CheckRange(n int64, typeName string, max int64) error {
	if n < 0 || n > max {
		return &model.ValueOverflowError{Type: typeName, Max: max}
	}
	return nil
}

// ToWhole interprets an untyped external value as a whole number.
// Fractional values are rejected rather than truncated.
func ToWhole(val any) (int64, error) {
	switch v := val.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%w: %v", model.ErrNotANumber, val)
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case uint:
		return wholeUint(uint64(v))
	case uint64:
		return wholeUint(v)
	case json.Number:
		return parseWhole(v.String())
	case string:
		return parseWhole(v)
	}

	n, err := cast.ToInt64E(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrNotANumber, val)
	}
	return n, nil
}

// AccountCount validates an untyped account count for a new ledger.
func AccountCount(val any) (int, error) {
	n, err := ToWhole(val)
	if err != nil {
		return 0, err
	}
	if err := CheckRange(n, "u8", constants.MaxAccounts); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Index validates an untyped account index against a ledger of n accounts.
func Index(val any, n int) (int, error) {
	i, err := ToWhole(val)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= int64(n) {
		return 0, &model.NodeNotFoundError{Index: int(i)}
	}
	return int(i), nil
}

// CheckIndex is the typed counterpart of Index.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return &model.NodeNotFoundError{Index: i}
	}
	return nil
}

// Amount validates a debt amount in cents.
func Amount(cents int64) error {
	return CheckRange(cents, "i32", constants.MaxTx)
}

// parseWhole reads strings with strconv: cast turns "" into 0.
func parseWhole(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &model.ValueOverflowError{Type: "i64", Max: math.MaxInt64}
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrNotANumber, s)
	}
	return wholeFloat(f)
}

func wholeFloat(f float64) (int64, error) {
	switch {
	case math.IsNaN(f):
		return 0, fmt.Errorf("%w: NaN", model.ErrNotANumber)
	case math.IsInf(f, 0), f >= math.MaxInt64, f < math.MinInt64:
		return 0, &model.ValueOverflowError{Type: "i64", Max: math.MaxInt64}
	case f != math.Trunc(f):
		return 0, fmt.Errorf("%w: %v is not a whole number", model.ErrNotANumber, f)
	}
	return int64(f), nil
}

func wholeUint(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, &model.ValueOverflowError{Type: "i64", Max: math.MaxInt64}
	}
	return int64(u), nil
}
