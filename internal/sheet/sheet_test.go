package sheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/netpay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trio = `
accounts: 3
names: [alice, bob, carol]
debts:
  - {from: 0, to: 1, amount: "0.30"}
  - {from: 1, to: 2, amount: "0.15", memo: lunch}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(trio))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Accounts)
	assert.Equal(t, []string{"alice", "bob", "carol"}, s.Names)
	require.Len(t, s.Debts, 2)
	assert.Equal(t, "lunch", s.Debts[1].Memo)

	assert.Equal(t, []service.DebtInput{
		{Debtor: 0, Creditor: 1, Amount: "0.30"},
		{Debtor: 1, Creditor: 2, Amount: "0.15"},
	}, s.Inputs())
}

func TestName(t *testing.T) {
	s, err := Parse([]byte("accounts: 3\nnames: [alice]\n"))
	require.NoError(t, err)

	assert.Equal(t, "alice", s.Name(0))
	assert.Equal(t, "", s.Name(1))
	assert.Equal(t, "", s.Name(-1))
	assert.Empty(t, s.Inputs())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "sheet is empty"},
		{"unknown field", "accounts: 2\nledger: main\n", "failed to parse sheet"},
		{"not yaml", "accounts: [", "failed to parse sheet"},
		{"missing amount", "accounts: 2\ndebts:\n  - {from: 0, to: 1}\n", "'required'"},
		{"long name", "accounts: 1\nnames: [" + strings.Repeat("x", 33) + "]\n", "'max'"},
		{"colon in name", "accounts: 1\nnames: [\"a:b\"]\n", "name #1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(trio), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Debts, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read sheet")
}
