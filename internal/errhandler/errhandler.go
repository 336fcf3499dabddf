package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/netpay/internal/model"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Hint returns a follow-up line for the domain errors, or "".
func Hint(err error) string {
	var notFound *model.NodeNotFoundError
	var overflow *model.ValueOverflowError

	switch {
	case errors.As(err, &notFound):
		return "Account indices start at 0 and must be lower than the number of accounts"
	case errors.As(err, &overflow):
		return "The value is outside the range the payment encoding can carry"
	case errors.Is(err, model.ErrNotANumber):
		return "Use a whole number, e.g. 3"
	case errors.Is(err, model.ErrMalformedEncoding):
		return "Encoded payments are 6 bytes each; check the input format (--format)"
	}
	return ""
}

func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	if hint := Hint(err); hint != "" {
		pterm.Info.Println(hint)
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
