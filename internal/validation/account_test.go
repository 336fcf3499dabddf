package validation

import (
	"strings"
	"testing"

	"github.com/hance08/netpay/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateAccountCount(t *testing.T) {
	assert.NoError(t, ValidateAccountCount("2"))
	assert.NoError(t, ValidateAccountCount("255"))
	assert.Error(t, ValidateAccountCount("1"))
	assert.Error(t, ValidateAccountCount("0"))
	assert.True(t, model.IsValueOverflow(ValidateAccountCount("256")))
	assert.ErrorIs(t, ValidateAccountCount("many"), model.ErrNotANumber)
}

func TestValidateIndexInput(t *testing.T) {
	check := ValidateIndexInput(3)
	assert.NoError(t, check("0"))
	assert.NoError(t, check("2"))
	assert.True(t, model.IsNodeNotFound(check("3")))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("12.50"))
	assert.Error(t, ValidateAmount("12.505"))
	assert.Error(t, ValidateAmount(""))
}

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName(""))
	assert.NoError(t, ValidateAccountName("alice"))
	assert.Error(t, ValidateAccountName("a:b"))
	assert.Error(t, ValidateAccountName(strings.Repeat("x", 33)))
}
