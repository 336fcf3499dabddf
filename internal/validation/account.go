package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/netpay/internal/constants"
	"github.com/hance08/netpay/internal/utils"
)

// ValidateAmount is a prompt validator for amount input.
func ValidateAmount(input string) error {
	_, err := utils.ParseToCents(input)
	return err
}

// ValidateAccountCount is a prompt validator for the number of accounts.
func ValidateAccountCount(input string) error {
	n, err := AccountCount(input)
	if err != nil {
		return err
	}
	if n < 2 {
		return fmt.Errorf("at least 2 accounts are needed to record a debt")
	}
	return nil
}

// ValidateIndexInput returns a prompt validator for an index in a ledger of n accounts.
func ValidateIndexInput(n int) func(string) error {
	return func(input string) error {
		_, err := Index(input, n)
		return err
	}
}

// ValidateAccountName validates an optional display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if strings.ContainsAny(name, ":\n") {
		return fmt.Errorf("account name cannot contain ':' or newlines")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}
