package cryptofolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
//
// The zero Money means "unknown/unset", which is how a coin starts before
// its price has been fetched.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, m.cur).Currency()
}

// Symbol returns the grapheme for the currency (e.g. "$" for usd), or the
// code itself when the currency is not a known one.
func (m Money) Symbol() string {
	if g := m.currency().Grapheme; g != "" {
		return g
	}
	return m.cur
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Mul(q Quantity) Money {
	return Money{value: m.value.Mul(q.value), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat is used by the renderers that format with the conventional
// printf %f verb.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) String() string { return m.value.String() }
