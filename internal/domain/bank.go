package domain

import (
	"strings"

	"currency-ledger/internal/currency"
	"currency-ledger/internal/errors"
	"currency-ledger/internal/money"
)

// Bank is a registry of accounts keyed by owner name. Accounts are added via
// CreateAccount and never removed.
type Bank struct {
	name     string
	accounts map[string]*Account
	order    []string
}

func NewBank(name string) (*Bank, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewAppError(errors.InvalidArgument, "bank name must be a non-empty string")
	}
	return &Bank{
		name:     name,
		accounts: make(map[string]*Account),
	}, nil
}

func (b *Bank) Name() string {
	return b.name
}

// CreateAccount registers a new account. Owner names are unique within the
// bank; the account constructor performs the remaining validation.
func (b *Bank) CreateAccount(owner string, initialBalance interface{}, code currency.Code) (*Account, error) {
	if _, exists := b.accounts[owner]; exists {
		return nil, errors.ErrDuplicateAccount.WithDetails(owner)
	}

	account, err := NewAccount(owner, initialBalance, code)
	if err != nil {
		return nil, err
	}

	b.accounts[owner] = account
	b.order = append(b.order, owner)
	return account, nil
}

// Account looks up a registered account by owner name.
func (b *Bank) Account(owner string) (*Account, error) {
	account, ok := b.accounts[owner]
	if !ok {
		return nil, errors.ErrAccountNotFound.WithDetails(owner)
	}
	return account, nil
}

// Statements returns snapshots of all accounts in creation order.
func (b *Bank) Statements() []Statement {
	out := make([]Statement, 0, len(b.order))
	for _, owner := range b.order {
		out = append(out, b.accounts[owner].Statement())
	}
	return out
}

// TotalDeposits sums every unblocked account's balance converted into the
// reporting currency. Blocked accounts contribute nothing and are not an
// error. A nil converter means the default rate table.
func (b *Bank) TotalDeposits(code currency.Code, conv *currency.Converter) (money.Money, error) {
	if !currency.Supported(code) {
		return money.Zero, errors.ErrUnsupportedCurrency.WithDetails(code.String())
	}
	if conv == nil {
		conv = currency.NewConverter(nil)
	}

	total := money.Zero
	for _, owner := range b.order {
		account := b.accounts[owner]
		if account.blocked {
			continue
		}
		converted, err := conv.Convert(account.balance, account.currency, code)
		if err != nil {
			return money.Zero, err
		}
		total = total.Add(converted)
	}
	return total, nil
}
