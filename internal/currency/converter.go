package currency

import (
	"github.com/shopspring/decimal"

	"currency-ledger/internal/errors"
	"currency-ledger/internal/money"
)

// Route is an ordered (from, to) currency pair. Rates are directional: the
// presence of RUB->USD says nothing about USD->RUB.
type Route struct {
	From Code
	To   Code
}

// RateTable maps routes to positive rate factors. It is not required to be
// symmetric or complete; converting over a missing route fails.
type RateTable map[Route]decimal.Decimal

// DefaultRates is the built-in RUB-centric table used when no table is
// injected.
func DefaultRates() RateTable {
	return RateTable{
		{RUB, USD}: decimal.RequireFromString("0.01"),
		{USD, RUB}: decimal.RequireFromString("100"),
		{RUB, EUR}: decimal.RequireFromString("0.0090909091"),
		{EUR, RUB}: decimal.RequireFromString("110"),
		{RUB, GBP}: decimal.RequireFromString("0.0076923077"),
		{GBP, RUB}: decimal.RequireFromString("130"),
	}
}

// Converter converts normalized amounts between supported currencies.
// It never derives cross rates: no inversion, no chaining through a third
// currency. A route is usable only if it is present in the table.
type Converter struct {
	rates RateTable
}

// NewConverter builds a converter over the given table; a nil table means
// DefaultRates.
func NewConverter(rates RateTable) *Converter {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Converter{rates: rates}
}

// Convert exchanges amount from one currency into another.
func (c *Converter) Convert(amount money.Money, from, to Code) (money.Money, error) {
	if !Supported(from) {
		return money.Zero, errors.ErrUnsupportedCurrency.WithDetails(from.String())
	}
	if !Supported(to) {
		return money.Zero, errors.ErrUnsupportedCurrency.WithDetails(to.String())
	}

	amount = amount.Quantize()

	if from == to {
		return amount, nil
	}

	rate, ok := c.rates[Route{From: from, To: to}]
	if !ok {
		return money.Zero, errors.NewAppErrorf(errors.InvalidArgument,
			"unsupported conversion route: %s->%s", from, to)
	}

	return amount.MulDecimal(rate), nil
}
