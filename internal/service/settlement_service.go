package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/netpay/internal/codec"
	"github.com/hance08/netpay/internal/config"
	"github.com/hance08/netpay/internal/ledger"
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/settle"
	"github.com/pterm/pterm"
)

type SettlementService struct {
	config *config.Config
	logger *pterm.Logger
}

func NewSettlementService(cfg *config.Config, logger *pterm.Logger) *SettlementService {
	return &SettlementService{config: cfg, logger: logger}
}

// Settle computes and encodes the payments for a snapshot of l. The ledger
// itself is not modified, so settling twice yields the same result.
func (ss *SettlementService) Settle(l *ledger.Ledger) (*Settlement, error) {
	if l == nil {
		return nil, fmt.Errorf("no ledger to settle")
	}

	balances := l.Balances()
	payments := settle.Settle(balances)

	for i, rest := range settle.Apply(balances, payments) {
		if rest != 0 {
			return nil, fmt.Errorf("settlement left %d cents on account %d", rest, i)
		}
	}

	result := &Settlement{
		ID:       uuid.New(),
		Accounts: l.Len(),
		Balances: balances,
		Payments: payments,
		Encoded:  codec.Encode(payments),
	}

	for _, p := range payments {
		ss.logger.Debug("payment", ss.logger.Args(
			"run", result.ID.String(),
			"payer", p.Payer,
			"amount", p.Amount,
			"payee", p.Payee,
		))
	}
	ss.logger.Info("settlement complete", ss.logger.Args(
		"run", result.ID.String(),
		"accounts", result.Accounts,
		"payments", len(payments),
		"bytes", len(result.Encoded),
	))

	return result, nil
}

// Decode parses an encoded payment list.
func (ss *SettlementService) Decode(data []byte) ([]model.Payment, error) {
	payments, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	ss.logger.Debug("payments decoded", ss.logger.Args("payments", len(payments)))
	return payments, nil
}

// EncodeText renders the encoded payments in the configured output format.
func (ss *SettlementService) EncodeText(s *Settlement, format string) ([]byte, error) {
	if format == "" {
		format = ss.config.Output.Format
	}
	return codec.EncodeText(s.Encoded, format)
}

// DecodeText parses text in the given (or configured) format into payments.
func (ss *SettlementService) DecodeText(text []byte, format string) ([]model.Payment, error) {
	if format == "" {
		format = ss.config.Output.Format
	}
	data, err := codec.DecodeText(text, format)
	if err != nil {
		return nil, err
	}
	return ss.Decode(data)
}
