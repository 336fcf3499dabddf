// Package sheet reads the YAML debt sheets consumed by the CLI.
//
//	accounts: 3
//	names: [alice, bob, carol]
//	debts:
//	  - {from: 0, to: 1, amount: "0.30"}
//	  - {from: 1, to: 2, amount: "0.15"}
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/netpay/internal/service"
	"github.com/hance08/netpay/internal/validation"
	"go.yaml.in/yaml/v3"
)

type Sheet struct {
	Accounts any      `yaml:"accounts"`
	Names    []string `yaml:"names" validate:"max=255,dive,max=32"`
	Debts    []Debt   `yaml:"debts" validate:"dive"`
}

type Debt struct {
	From   any    `yaml:"from"`
	To     any    `yaml:"to"`
	Amount string `yaml:"amount" validate:"required"`
	Memo   string `yaml:"memo"`
}

var validate = validator.New()

// Load reads and validates a sheet from path. "-" reads stdin.
func Load(path string) (*Sheet, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a sheet.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sheet is empty")
		}
		return nil, fmt.Errorf("failed to parse sheet: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sheet) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid sheet: field '%s' failed '%s' check", e.Namespace(), e.Tag())
		}
		return err
	}

	for i, name := range s.Names {
		if err := validation.ValidateAccountName(name); err != nil {
			return fmt.Errorf("invalid sheet: name #%d: %w", i+1, err)
		}
	}
	return nil
}

// Inputs converts the sheet debts for the ledger service.
func (s *Sheet) Inputs() []service.DebtInput {
	inputs := make([]service.DebtInput, 0, len(s.Debts))
	for _, d := range s.Debts {
		inputs = append(inputs, service.DebtInput{
			Debtor:   d.From,
			Creditor: d.To,
			Amount:   d.Amount,
		})
	}
	return inputs
}

// Name returns the display name of account i, or "" when none was given.
func (s *Sheet) Name(i int) string {
	if i >= 0 && i < len(s.Names) {
		return s.Names[i]
	}
	return ""
}
