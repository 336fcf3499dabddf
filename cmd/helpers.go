package cmd

import (
	"fmt"
	"os"

	"github.com/hance08/netpay/internal/app"
	"github.com/hance08/netpay/internal/ledger"
	"github.com/hance08/netpay/internal/sheet"
	"github.com/hance08/netpay/internal/ui/prompts"
)

// loadLedger reads a debt sheet and records every debt into a new ledger.
func loadLedger(a *app.App, path string) (*ledger.Ledger, *sheet.Sheet, error) {
	sh, err := sheet.Load(path)
	if err != nil {
		return nil, nil, err
	}

	l, err := a.Service.Ledger.Open(sh.Accounts)
	if err != nil {
		return nil, nil, err
	}

	if err := a.Service.Ledger.RecordAll(l, sh.Inputs()); err != nil {
		return nil, nil, err
	}

	return l, sh, nil
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func writeOutput(path string, data []byte, force bool) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		return nil
	}

	if _, err := os.Stat(path); err == nil && !force {
		ok, err := prompts.ConfirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("not overwriting %s", path)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
