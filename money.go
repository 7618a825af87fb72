package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display amount in a given currency. The engine computes in
// float64; reports convert at the presentation boundary so amounts are
// rounded and formatted by currency rules exactly once.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from an engine value and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// IsNegative reports whether the amount is negative.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// currency resolves the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency's symbol and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but keeps an explicit "+" on gains and
// renders zero as "-", the way report tables show P&L columns.
func (m Money) SignedString() string {
	switch {
	case m.IsZero():
		return "-"
	case m.IsNegative():
		return m.String()
	default:
		return "+" + m.String()
	}
}
