package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-ledger/internal/currency"
	apperrors "currency-ledger/internal/errors"
	"currency-ledger/internal/money"
)

func newAccount(t *testing.T, owner string, balance interface{}, code currency.Code) *Account {
	t.Helper()
	a, err := NewAccount(owner, balance, code)
	require.NoError(t, err)
	return a
}

func TestNewAccountValidation(t *testing.T) {
	_, err := NewAccount("", 0, currency.RUB)
	assert.Error(t, err)

	_, err = NewAccount("   ", 0, currency.RUB)
	assert.Error(t, err)

	_, err = NewAccount("alice", 0, "JPY")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)

	_, err = NewAccount("alice", true, currency.RUB)
	assert.ErrorIs(t, err, apperrors.ErrAmountNotNumeric)
}

func TestNewAccountDefaults(t *testing.T) {
	a := newAccount(t, "alice", 10.005, currency.RUB)

	assert.Equal(t, "alice", a.Owner())
	assert.Equal(t, "10.01", a.Balance().String())
	assert.Equal(t, currency.RUB, a.Currency())
	assert.False(t, a.IsBlocked())
	assert.True(t, a.OverdraftLimit().IsZero())
	assert.Empty(t, a.Statement().Transactions)
}

func TestDeposit(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)

	balance, err := a.Deposit(10)
	require.NoError(t, err)
	assert.Equal(t, "10.00", balance.String())

	statement := a.Statement()
	require.Len(t, statement.Transactions, 1)
	assert.Equal(t, "+10.00 RUB", statement.Transactions[0])
}

func TestDepositRejectsBadAmounts(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)

	_, err := a.Deposit(-1)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Deposit(0)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Deposit(1e9)
	assert.ErrorIs(t, err, apperrors.ErrDepositTooLarge)

	_, err = a.Deposit("100")
	assert.ErrorIs(t, err, apperrors.ErrAmountNotNumeric)

	_, err = a.Deposit(true)
	assert.ErrorIs(t, err, apperrors.ErrAmountNotNumeric)

	assert.True(t, a.Balance().IsZero())
	assert.Empty(t, a.Statement().Transactions)
}

func TestDepositCeilingBoundary(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)

	// Exactly the ceiling is allowed; one cent over is not.
	_, err := a.Deposit(money.MustFromString("1000000.00"))
	require.NoError(t, err)

	_, err = a.Deposit(money.MustFromString("1000000.01"))
	assert.ErrorIs(t, err, apperrors.ErrDepositTooLarge)
}

func TestDepositAllowedWhenBlocked(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)
	a.Block()

	_, err := a.Deposit(10)
	require.NoError(t, err)
	assert.Equal(t, "10.00", a.Balance().String())
}

func TestWithdrawChargesFee(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	withdrawn, err := a.Withdraw(10)
	require.NoError(t, err)

	// The returned value is the requested amount; the fee only shows in the
	// balance and the log.
	assert.Equal(t, "10.00", withdrawn.String())
	assert.Equal(t, "89.90", a.Balance().String())

	statement := a.Statement()
	require.Len(t, statement.Transactions, 1)
	assert.Equal(t, "-10.00 (fee 0.10) RUB", statement.Transactions[0])
}

func TestWithdrawFeeRoundsHalfUp(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	// 1% of 0.50 is 0.005, which rounds up to 0.01.
	_, err := a.Withdraw(0.5)
	require.NoError(t, err)
	assert.Equal(t, "99.49", a.Balance().String())
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	// 100 + 1.00 fee exceeds the balance.
	_, err := a.Withdraw(100)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, "100.00", a.Balance().String())
	assert.Empty(t, a.Statement().Transactions)
}

func TestWithdrawWithinOverdraft(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	require.NoError(t, a.SetOverdraftLimit(50))

	_, err := a.Withdraw(120)
	require.NoError(t, err)
	assert.Equal(t, "-21.20", a.Balance().String())

	_, err = a.Withdraw(30)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
}

func TestWithdrawBlocked(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	a.Block()

	_, err := a.Withdraw(10)
	assert.ErrorIs(t, err, apperrors.ErrAccountBlocked)
	assert.Equal(t, "100.00", a.Balance().String())
}

func TestWithdrawRejectsBadAmounts(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	_, err := a.Withdraw(0)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Withdraw(-5)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Withdraw(true)
	assert.ErrorIs(t, err, apperrors.ErrAmountNotNumeric)
}

func TestSetOverdraftLimit(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)

	assert.Error(t, a.SetOverdraftLimit(-1))
	assert.Error(t, a.SetOverdraftLimit(true))

	require.NoError(t, a.SetOverdraftLimit(25.5))
	assert.Equal(t, "25.50", a.OverdraftLimit().String())
}

func TestConvertTo(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	balance, err := a.ConvertTo(currency.USD, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.00", balance.String())
	assert.Equal(t, currency.USD, a.Currency())

	statement := a.Statement()
	require.Len(t, statement.Transactions, 1)
	assert.Equal(t, "converted to USD", statement.Transactions[0])
}

func TestConvertToUnsupportedCurrency(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	_, err := a.ConvertTo("JPY", nil)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
	assert.Equal(t, currency.RUB, a.Currency())
}

func TestConvertToMissingRouteLeavesAccountUntouched(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.USD)

	_, err := a.ConvertTo(currency.EUR, nil)
	require.Error(t, err)
	assert.Equal(t, currency.USD, a.Currency())
	assert.Equal(t, "100.00", a.Balance().String())
	assert.Empty(t, a.Statement().Transactions)
}

func TestConvertToAllowedWhenBlocked(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	a.Block()

	_, err := a.ConvertTo(currency.USD, nil)
	require.NoError(t, err)
	assert.Equal(t, currency.USD, a.Currency())
}

func TestStatementIsDeepCopy(t *testing.T) {
	a := newAccount(t, "alice", 0, currency.RUB)
	_, err := a.Deposit(10)
	require.NoError(t, err)

	statement := a.Statement()
	statement.Transactions[0] = "tampered"
	statement.Transactions = append(statement.Transactions, "injected")

	fresh := a.Statement()
	require.Len(t, fresh.Transactions, 1)
	assert.Equal(t, "+10.00 RUB", fresh.Transactions[0])
}

func TestTransfer(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	b := newAccount(t, "bob", 0, currency.USD)

	credited, err := a.Transfer(b, 10, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.10", credited.String())
	assert.Equal(t, "90.00", a.Balance().String())
	assert.Equal(t, "0.10", b.Balance().String())

	assert.Equal(t, []string{"transfer -10.00 RUB to bob"}, a.Statement().Transactions)
	assert.Equal(t, []string{"transfer +0.10 USD from alice"}, b.Statement().Transactions)
}

func TestTransferSameCurrency(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	b := newAccount(t, "bob", 0, currency.RUB)

	credited, err := a.Transfer(b, 25.5, nil)
	require.NoError(t, err)
	assert.Equal(t, "25.50", credited.String())
	assert.Equal(t, "74.50", a.Balance().String())
	assert.Equal(t, "25.50", b.Balance().String())
}

func TestTransferBlockedSender(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	b := newAccount(t, "bob", 0, currency.RUB)
	a.Block()

	_, err := a.Transfer(b, 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrAccountBlocked)
}

func TestTransferNilTarget(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)

	_, err := a.Transfer(nil, 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransferTarget)
}

func TestTransferRejectsBadAmounts(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.RUB)
	b := newAccount(t, "bob", 0, currency.RUB)

	_, err := a.Transfer(b, 0, nil)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Transfer(b, -10, nil)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveAmount)

	_, err = a.Transfer(b, "10", nil)
	assert.ErrorIs(t, err, apperrors.ErrAmountNotNumeric)
}

func TestTransferInsufficientFundsCheckedBeforeConversion(t *testing.T) {
	a := newAccount(t, "alice", 5, currency.USD)
	b := newAccount(t, "bob", 0, currency.EUR)

	// USD->EUR has no route in the default table, but the funds check runs
	// first and must win.
	_, err := a.Transfer(b, 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
}

func TestTransferAtomicOnConversionFailure(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.USD)
	b := newAccount(t, "bob", 50, currency.EUR)

	// Funds are sufficient, the conversion itself fails: neither balance nor
	// either log may change.
	conv := currency.NewConverter(currency.RateTable{})
	_, err := a.Transfer(b, 10, conv)
	require.Error(t, err)

	assert.Equal(t, "100.00", a.Balance().String())
	assert.Equal(t, "50.00", b.Balance().String())
	assert.Empty(t, a.Statement().Transactions)
	assert.Empty(t, b.Statement().Transactions)
}

func TestTransferDebitsSenderCurrencyAmount(t *testing.T) {
	a := newAccount(t, "alice", 100, currency.USD)
	b := newAccount(t, "bob", 0, currency.RUB)

	conv := currency.NewConverter(currency.RateTable{
		{From: currency.USD, To: currency.RUB}: decimal.RequireFromString("100"),
	})

	credited, err := a.Transfer(b, 1, conv)
	require.NoError(t, err)

	// Sender loses 1.00 USD, not the converted 100.00.
	assert.Equal(t, "100.00", credited.String())
	assert.Equal(t, "99.00", a.Balance().String())
	assert.Equal(t, "100.00", b.Balance().String())
}
