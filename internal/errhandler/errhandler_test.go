package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/netpay/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(fmt.Errorf("wizard: %w", huh.ErrUserAborted)))
	assert.False(t, IsCancelled(errors.New("disk full")))
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"node not found", fmt.Errorf("debt #1: %w", &model.NodeNotFoundError{Index: 4}), "Account indices"},
		{"overflow", &model.ValueOverflowError{Type: "i32", Max: 8421504}, "outside the range"},
		{"not a number", fmt.Errorf("%w: \"x\"", model.ErrNotANumber), "whole number"},
		{"malformed", fmt.Errorf("%w: 7 bytes", model.ErrMalformedEncoding), "6 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Hint(tt.err), tt.want)
		})
	}

	assert.Empty(t, Hint(errors.New("other")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Node 3 does not exist", Capitalize("node 3 does not exist"))
	assert.Equal(t, "Élan", Capitalize("élan"))
}
