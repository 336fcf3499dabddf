package utils

import (
	"testing"

	"github.com/hance08/netpay/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "150", want: 15000},
		{in: "150.5", want: 15050},
		{in: "150.50", want: 15050},
		{in: "0.30", want: 30},
		{in: " 1.230 ", want: 123},
		{in: "0", want: 0},
		{in: "84215.04", want: 8421504},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseToCents(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToCentsErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.2.3"} {
		_, err := ParseToCents(in)
		assert.Error(t, err, in)
	}

	for _, in := range []string{"-1", "84215.05", "99999999999999999999"} {
		_, err := ParseToCents(in)
		assert.True(t, model.IsValueOverflow(err), in)
	}
}

func TestFormatFromCents(t *testing.T) {
	assert.Equal(t, "0.05", FormatFromCents(5))
	assert.Equal(t, "150.50", FormatFromCents(15050))
	assert.Equal(t, "-15.50", FormatFromCents(-1550))
	assert.Equal(t, "0.00", FormatFromCents(0))

	assert.Equal(t, "12.00 USD", FormatWithCurrency(1200, "USD"))
	assert.Equal(t, "12.00", FormatWithCurrency(1200, ""))
}
