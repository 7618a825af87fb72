package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ebal/folio/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The JSONL line format for one transaction. Quantity and price go through
// decimal so exported files carry exact digits instead of float noise.
type txLine struct {
	Type     string          `json:"type"`
	Date     date.Date       `json:"date"`
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// EncodeTransaction writes a single transaction as one JSONL line with a
// stable field order.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	var obj jsonObjectWriter
	obj.Append("type", tx.Type)
	obj.Append("date", tx.Date)
	obj.Append("symbol", tx.Symbol)
	obj.Append("quantity", decimal.NewFromFloat(tx.Quantity))
	obj.Append("price", decimal.NewFromFloat(tx.Price))
	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode %s %s: %w", tx.Type, tx.Symbol, err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes every transaction of the ledger in chronological
// order, one JSONL line each.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a stream of JSONL transaction lines and returns a
// sorted ledger. Each line is validated: an unknown type, a missing symbol
// or a non-positive quantity or price is an error naming the offending line,
// never a silent skip.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line txLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("line %d: could not decode %q: %w", lineNo, string(lineBytes), err)
		}
		tx := Transaction{
			Symbol:   line.Symbol,
			Type:     TxType(line.Type),
			Quantity: line.Quantity.InexactFloat64(),
			Price:    line.Price.InexactFloat64(),
			Date:     line.Date,
		}
		tx, err := tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return ledger, nil
}
