package folio

import (
	"fmt"
	"strings"

	"github.com/ebal/folio/date"
)

// TxType is a typed string identifying the kind of a transaction.
// Only the two variants below exist; anything else is a data-integrity
// error that must be rejected at the ingestion boundary (store or codec)
// before a transaction reaches the engine.
type TxType string

const (
	Buy  TxType = "BUY"
	Sell TxType = "SELL"
)

// ParseTxType parses a string into a TxType. It is case-insensitive.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Buy):
		return Buy, nil
	case string(Sell):
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single buy or sell of an instrument, immutable once
// recorded. ID and AccountID are assigned by the store; the engine never
// interprets them beyond selecting the ledger slice.
type Transaction struct {
	ID        int64
	AccountID int64
	Symbol    string // uppercase instrument identifier
	Type      TxType
	Quantity  float64 // positive count of units
	Price     float64 // positive per-unit price at time of trade
	Date      date.Date
}

// NewBuy returns a BUY transaction for the given day.
func NewBuy(on date.Date, symbol string, quantity, price float64) Transaction {
	return Transaction{Symbol: symbol, Type: Buy, Quantity: quantity, Price: price, Date: on}
}

// NewSell returns a SELL transaction for the given day.
func NewSell(on date.Date, symbol string, quantity, price float64) Transaction {
	return Transaction{Symbol: symbol, Type: Sell, Quantity: quantity, Price: price, Date: on}
}

// Amount is the total traded value of the transaction.
func (t Transaction) Amount() float64 { return t.Quantity * t.Price }

// Validate checks the transaction against the ingestion contract: a known
// type, a symbol, positive quantity and price. It normalizes the symbol to
// uppercase and defaults a zero date to today, returning the fixed-up
// transaction.
func (t Transaction) Validate() (Transaction, error) {
	typ, err := ParseTxType(string(t.Type))
	if err != nil {
		return t, err
	}
	t.Type = typ
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	if t.Symbol == "" {
		return t, fmt.Errorf("%s transaction has no symbol", t.Type)
	}
	if t.Quantity <= 0 {
		return t, fmt.Errorf("%s %s quantity must be positive, got %v", t.Type, t.Symbol, t.Quantity)
	}
	if t.Price <= 0 {
		return t, fmt.Errorf("%s %s price must be positive, got %v", t.Type, t.Symbol, t.Price)
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	return t, nil
}
