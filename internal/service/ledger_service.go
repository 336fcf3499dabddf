package service

import (
	"fmt"

	"github.com/hance08/netpay/internal/config"
	"github.com/hance08/netpay/internal/ledger"
	"github.com/hance08/netpay/internal/model"
	"github.com/hance08/netpay/internal/utils"
	"github.com/hance08/netpay/internal/validation"
	"github.com/pterm/pterm"
)

type LedgerService struct {
	config *config.Config
	logger *pterm.Logger
}

func NewLedgerService(cfg *config.Config, logger *pterm.Logger) *LedgerService {
	return &LedgerService{config: cfg, logger: logger}
}

// Open creates an empty ledger from an untyped account count. The count is
// also held to the configured ledger.max_accounts.
func (ls *LedgerService) Open(count any) (*ledger.Ledger, error) {
	n, err := validation.AccountCount(count)
	if err != nil {
		return nil, fmt.Errorf("invalid account count: %w", err)
	}

	limit := ls.config.Ledger.MaxAccounts
	if err := validation.CheckRange(int64(n), "account count", int64(limit)); err != nil {
		return nil, fmt.Errorf("invalid account count: %w", err)
	}

	l, err := ledger.New(n)
	if err != nil {
		return nil, err
	}

	ls.logger.Debug("ledger opened", ls.logger.Args("accounts", n))
	return l, nil
}

// Record validates one external debt and records it.
func (ls *LedgerService) Record(l *ledger.Ledger, in DebtInput) error {
	debtor, err := validation.Index(in.Debtor, l.Len())
	if err != nil {
		return fmt.Errorf("debtor: %w", err)
	}

	creditor, err := validation.Index(in.Creditor, l.Len())
	if err != nil {
		return fmt.Errorf("creditor: %w", err)
	}

	cents, err := utils.ParseToCents(in.Amount)
	if err != nil {
		return err
	}

	if err := l.RecordDebt(debtor, creditor, cents); err != nil {
		return err
	}

	ls.logger.Trace("debt recorded", ls.logger.Args(
		"debtor", debtor,
		"creditor", creditor,
		"cents", cents,
	))
	return nil
}

// RecordAll records a batch of debts. Either every debt is applied or the
// ledger is left untouched.
func (ls *LedgerService) RecordAll(l *ledger.Ledger, inputs []DebtInput) error {
	work := l.Clone()

	for i, in := range inputs {
		if err := ls.Record(work, in); err != nil {
			return fmt.Errorf("debt #%d: %w", i+1, err)
		}
	}

	if work.Sum() != 0 {
		return fmt.Errorf("ledger does not balance: total is %d cents, must be 0", work.Sum())
	}

	*l = *work
	ls.logger.Debug("debts recorded", ls.logger.Args("count", len(inputs), "accounts", l.Len()))
	return nil
}

// Accounts pairs each balance with its display name.
func (ls *LedgerService) Accounts(l *ledger.Ledger, names []string) []model.Account {
	balances := l.Balances()
	accounts := make([]model.Account, 0, len(balances))
	for i, b := range balances {
		acc := model.Account{Index: uint8(i), Balance: b}
		if i < len(names) {
			acc.Name = names[i]
		}
		accounts = append(accounts, acc)
	}
	return accounts
}
