// Package currency defines the supported currency codes and the converter
// that moves amounts between them using an injected table of pairwise rates.
package currency

// Code is an ISO 4217 currency code from the supported set.
type Code string

const (
	RUB Code = "RUB"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
)

var supported = map[Code]struct{}{
	RUB: {},
	USD: {},
	EUR: {},
	GBP: {},
}

// Supported reports whether the code belongs to the fixed supported set.
// Every monetary operation validates membership before touching balances.
func Supported(c Code) bool {
	_, ok := supported[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}
