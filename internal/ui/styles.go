package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// ColorByBalance paints text red for debtors, green for creditors and gray
// for settled accounts.
func ColorByBalance(balance int64, text string) string {
	switch {
	case balance < 0:
		return pterm.Red(text)
	case balance > 0:
		return pterm.Green(text)
	default:
		return pterm.Gray(text)
	}
}
