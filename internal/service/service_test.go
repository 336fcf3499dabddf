package service

import (
	"encoding/hex"
	"testing"

	"github.com/hance08/netpay/internal/config"
	"github.com/hance08/netpay/internal/ledger"
	"github.com/hance08/netpay/internal/logging"
	"github.com/hance08/netpay/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(config.NewDefault(), logging.Discard())
}

func openWithDebts(t *testing.T, svc *Service, n any, debts ...DebtInput) *ledger.Ledger {
	t.Helper()

	l, err := svc.Ledger.Open(n)
	require.NoError(t, err)
	require.NoError(t, svc.Ledger.RecordAll(l, debts))
	return l
}

func TestOpen(t *testing.T) {
	svc := newTestService(t)

	l, err := svc.Ledger.Open("3")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	_, err = svc.Ledger.Open(300)
	assert.True(t, model.IsValueOverflow(err))

	_, err = svc.Ledger.Open("a few")
	assert.ErrorIs(t, err, model.ErrNotANumber)
}

func TestOpenConfiguredLimit(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Ledger.MaxAccounts = 4
	svc := NewService(cfg, logging.Discard())

	_, err := svc.Ledger.Open(4)
	require.NoError(t, err)

	_, err = svc.Ledger.Open(5)
	var overflow *model.ValueOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, int64(4), overflow.Max)
}

func TestRecord(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 3, DebtInput{Debtor: 0, Creditor: 1.0, Amount: "0.30"})

	assert.Equal(t, []int32{-30, 30, 0}, l.Balances())

	err := svc.Ledger.Record(l, DebtInput{Debtor: 0, Creditor: 3, Amount: "1"})
	assert.True(t, model.IsNodeNotFound(err))
	assert.Contains(t, err.Error(), "creditor")

	err = svc.Ledger.Record(l, DebtInput{Debtor: "zero", Creditor: 1, Amount: "1"})
	assert.ErrorIs(t, err, model.ErrNotANumber)

	err = svc.Ledger.Record(l, DebtInput{Debtor: 0, Creditor: 1, Amount: "100000"})
	assert.True(t, model.IsValueOverflow(err))

	assert.Equal(t, []int32{-30, 30, 0}, l.Balances())
}

func TestRecordAllIsAtomic(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 2, DebtInput{Debtor: 0, Creditor: 1, Amount: "0.30"})

	err := svc.Ledger.RecordAll(l, []DebtInput{
		{Debtor: 1, Creditor: 0, Amount: "0.15"},
		{Debtor: 0, Creditor: 2, Amount: "0.30"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debt #2")

	var notFound *model.NodeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 2, notFound.Index)

	assert.Equal(t, []int32{-30, 30}, l.Balances())
}

func TestAccounts(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 3, DebtInput{Debtor: 2, Creditor: 0, Amount: "5"})

	accounts := svc.Ledger.Accounts(l, []string{"alice"})
	require.Len(t, accounts, 3)
	assert.Equal(t, model.Account{Index: 0, Name: "alice", Balance: 500}, accounts[0])
	assert.Equal(t, "#2", accounts[2].Label())
	assert.Equal(t, int32(-500), accounts[2].Balance)
}

func TestSettle(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 3,
		DebtInput{Debtor: 0, Creditor: 1, Amount: "0.30"},
		DebtInput{Debtor: 1, Creditor: 2, Amount: "0.15"},
	)

	result, err := svc.Settlement.Settle(l)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Accounts)
	assert.Equal(t, []int32{-30, 15, 15}, result.Balances)
	assert.Equal(t, []string{"0: 15 -> 1", "0: 15 -> 2"}, result.Lines())
	assert.Equal(t, "000000000f01000000000f02", hex.EncodeToString(result.Encoded))
	assert.NotEmpty(t, result.ID.String())
}

func TestSettleIsRepeatable(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 3,
		DebtInput{Debtor: 0, Creditor: 1, Amount: "0.30"},
		DebtInput{Debtor: 1, Creditor: 2, Amount: "0.30"},
	)

	first, err := svc.Settlement.Settle(l)
	require.NoError(t, err)
	second, err := svc.Settlement.Settle(l)
	require.NoError(t, err)

	assert.Equal(t, first.Payments, second.Payments)
	assert.Equal(t, first.Encoded, second.Encoded)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []int32{-30, 0, 30}, l.Balances())
	assert.Equal(t, []string{"0: 30 -> 2"}, second.Lines())
}

func TestSettleEmptyLedger(t *testing.T) {
	svc := newTestService(t)

	for _, n := range []int{0, 1, 5} {
		l := openWithDebts(t, svc, n)
		result, err := svc.Settlement.Settle(l)
		require.NoError(t, err)
		assert.Empty(t, result.Payments)
		assert.Empty(t, result.Encoded)
	}

	_, err := svc.Settlement.Settle(nil)
	assert.Error(t, err)
}

func TestEncodeDecodeText(t *testing.T) {
	svc := newTestService(t)
	l := openWithDebts(t, svc, 2, DebtInput{Debtor: 0, Creditor: 1, Amount: "0.30"})

	result, err := svc.Settlement.Settle(l)
	require.NoError(t, err)

	text, err := svc.Settlement.EncodeText(result, "")
	require.NoError(t, err)
	assert.Equal(t, "000000001e01", string(text))

	payments, err := svc.Settlement.DecodeText(text, "")
	require.NoError(t, err)
	assert.Equal(t, result.Payments, payments)

	b64, err := svc.Settlement.EncodeText(result, "base64")
	require.NoError(t, err)
	payments, err = svc.Settlement.DecodeText(b64, "base64")
	require.NoError(t, err)
	assert.Equal(t, result.Payments, payments)
}

func TestDecodeMalformed(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Settlement.Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, model.ErrMalformedEncoding)

	_, err = svc.Settlement.DecodeText([]byte("0000"), "hex")
	assert.ErrorIs(t, err, model.ErrMalformedEncoding)
}
