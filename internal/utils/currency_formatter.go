package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/model"
	"github.com/shopspring/decimal"
)

var (
	maxTxCents   = decimal.NewFromInt(constants.MaxTx)
	centsPerUnit = decimal.NewFromInt(constants.CentsPerUnit)
)

func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatWithCurrency renders cents as "12.50 USD".
func FormatWithCurrency(cents int64, currency string) string {
	if currency == "" {
		return FormatFromCents(cents)
	}
	return fmt.Sprintf("%s %s", FormatFromCents(cents), currency)
}

// ParseToCents converts a currency string to cents
// e.g., "150.50" -> 15050, "150" -> 15000
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if !d.Equal(d.Truncate(2)) {
		return 0, fmt.Errorf("amount has more than 2 decimal places: %s", amountStr)
	}

	cents := d.Mul(centsPerUnit)
	if cents.IsNegative() || cents.GreaterThan(maxTxCents) {
		return 0, &model.ValueOverflowError{Type: "i32", Max: constants.MaxTx}
	}

	return cents.IntPart(), nil
}
