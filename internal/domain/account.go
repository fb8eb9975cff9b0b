package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"currency-ledger/internal/currency"
	"currency-ledger/internal/errors"
	"currency-ledger/internal/money"
)

// MaxDeposit is the per-deposit ceiling. A single deposit above it is
// rejected regardless of the account balance.
var MaxDeposit = money.MustFromString("1000000.00")

// withdrawFeeRate is the flat fee charged on every withdrawal.
var withdrawFeeRate = decimal.RequireFromString("0.01")

// Account is a single-currency bank account with an append-only transaction
// log. Balances are always quantized Money; the account mutates only through
// its own methods.
//
// Deposits and balance conversion are allowed on a blocked account; only
// withdraw and transfer check the block flag. The asymmetry is deliberate:
// a blocked account can still receive and revalue funds, it just cannot move
// them out.
type Account struct {
	owner          string
	balance        money.Money
	currency       currency.Code
	transactions   []string
	blocked        bool
	overdraftLimit money.Money
}

// Statement is a read-only snapshot of an account. Transactions is a copy;
// mutating it never touches the account's internal log.
type Statement struct {
	Owner          string        `json:"owner"`
	Currency       currency.Code `json:"currency"`
	Balance        money.Money   `json:"balance"`
	Transactions   []string      `json:"transactions"`
	Blocked        bool          `json:"is_blocked"`
	OverdraftLimit money.Money   `json:"overdraft_limit"`
}

// NewAccount creates an unblocked account with a zero overdraft limit and an
// empty log. The initial balance goes through the same normalization as every
// amount, so a boolean or non-numeric value is rejected.
func NewAccount(owner string, initialBalance interface{}, code currency.Code) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, errors.NewAppError(errors.InvalidArgument, "owner must be a non-empty string")
	}
	if !currency.Supported(code) {
		return nil, errors.ErrUnsupportedCurrency.WithDetails(code.String())
	}

	balance, err := money.FromValue(initialBalance)
	if err != nil {
		return nil, err
	}

	return &Account{
		owner:    owner,
		balance:  balance,
		currency: code,
	}, nil
}

func (a *Account) Owner() string           { return a.owner }
func (a *Account) Balance() money.Money    { return a.balance }
func (a *Account) Currency() currency.Code { return a.currency }
func (a *Account) IsBlocked() bool         { return a.blocked }

func (a *Account) Block()   { a.blocked = true }
func (a *Account) Unblock() { a.blocked = false }

func (a *Account) OverdraftLimit() money.Money { return a.overdraftLimit }

// SetOverdraftLimit sets how far the balance may go negative. The limit is a
// non-negative amount in the account's currency.
func (a *Account) SetOverdraftLimit(limit interface{}) error {
	l, err := money.FromValue(limit)
	if err != nil {
		return err
	}
	if l.IsNegative() {
		return errors.NewAppError(errors.InvalidArgument, "overdraft limit must not be negative")
	}
	a.overdraftLimit = l
	return nil
}

// Deposit credits the account and returns the new balance. Deposits are
// allowed on blocked accounts.
func (a *Account) Deposit(amount interface{}) (money.Money, error) {
	amt, err := money.FromValue(amount)
	if err != nil {
		return money.Zero, err
	}
	if !amt.IsPositive() {
		return money.Zero, errors.ErrNonPositiveAmount
	}
	if amt.GreaterThan(MaxDeposit) {
		return money.Zero, errors.ErrDepositTooLarge
	}

	a.balance = a.balance.Add(amt)
	a.log("+%s %s", amt, a.currency)
	return a.balance, nil
}

// Withdraw debits the requested amount plus a flat 1% fee and returns the
// requested (pre-fee) amount. The funds check honors the overdraft limit.
func (a *Account) Withdraw(amount interface{}) (money.Money, error) {
	if a.blocked {
		return money.Zero, errors.ErrAccountBlocked
	}

	amt, err := money.FromValue(amount)
	if err != nil {
		return money.Zero, err
	}
	if !amt.IsPositive() {
		return money.Zero, errors.ErrNonPositiveAmount
	}

	fee := amt.MulDecimal(withdrawFeeRate)
	total := amt.Add(fee)

	if a.balance.Sub(total).LessThan(a.overdraftLimit.Neg()) {
		return money.Zero, errors.ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(total)
	a.log("-%s (fee %s) %s", amt, fee, a.currency)
	return amt, nil
}

// ConvertTo exchanges the whole balance into the target currency and makes it
// the account currency. A nil converter means the default rate table. Allowed
// on blocked accounts.
func (a *Account) ConvertTo(target currency.Code, conv *currency.Converter) (money.Money, error) {
	if !currency.Supported(target) {
		return money.Zero, errors.ErrUnsupportedCurrency.WithDetails(target.String())
	}
	if conv == nil {
		conv = currency.NewConverter(nil)
	}

	converted, err := conv.Convert(a.balance, a.currency, target)
	if err != nil {
		return money.Zero, err
	}

	a.balance = converted
	a.currency = target
	a.log("converted to %s", target)
	return a.balance, nil
}

// Transfer moves amount to the target account, converting into the target's
// currency. The sender is debited the requested amount in its own currency;
// the target is credited the converted amount.
//
// The funds check runs before the conversion, but nothing is committed until
// the conversion has succeeded: both new balances are computed first and then
// applied together, so a converter failure leaves both accounts and both logs
// untouched.
func (a *Account) Transfer(target *Account, amount interface{}, conv *currency.Converter) (money.Money, error) {
	if a.blocked {
		return money.Zero, errors.ErrAccountBlocked
	}
	if target == nil {
		return money.Zero, errors.ErrInvalidTransferTarget
	}

	amt, err := money.FromValue(amount)
	if err != nil {
		return money.Zero, err
	}
	if !amt.IsPositive() {
		return money.Zero, errors.ErrNonPositiveAmount
	}
	if conv == nil {
		conv = currency.NewConverter(nil)
	}

	if a.balance.Sub(amt).LessThan(a.overdraftLimit.Neg()) {
		return money.Zero, errors.ErrInsufficientFunds
	}

	credited, err := conv.Convert(amt, a.currency, target.currency)
	if err != nil {
		return money.Zero, err
	}

	// Commit point: both sides change together or not at all.
	a.balance = a.balance.Sub(amt)
	target.balance = target.balance.Add(credited)
	a.log("transfer -%s %s to %s", amt, a.currency, target.owner)
	target.log("transfer +%s %s from %s", credited, target.currency, a.owner)
	return credited, nil
}

// Statement returns a snapshot of the account state with a copied log.
func (a *Account) Statement() Statement {
	transactions := make([]string, len(a.transactions))
	copy(transactions, a.transactions)
	return Statement{
		Owner:          a.owner,
		Currency:       a.currency,
		Balance:        a.balance,
		Transactions:   transactions,
		Blocked:        a.blocked,
		OverdraftLimit: a.overdraftLimit,
	}
}

func (a *Account) log(format string, args ...interface{}) {
	a.transactions = append(a.transactions, fmt.Sprintf(format, args...))
}
