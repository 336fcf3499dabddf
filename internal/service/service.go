package service

import (
	"github.com/hance08/netpay/internal/config"
	"github.com/pterm/pterm"
)

type Service struct {
	Ledger     *LedgerService
	Settlement *SettlementService
}

func NewService(cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Ledger:     NewLedgerService(cfg, logger),
		Settlement: NewSettlementService(cfg, logger),
	}
}
