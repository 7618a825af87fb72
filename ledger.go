package folio

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/ebal/folio/date"
)

// Ledger represents the transaction history of one account.
//
// In a Ledger transactions are always in chronological order. The sort is
// stable: transactions on the same day keep the relative order they were
// appended in. The store returns transactions ordered by insertion, so a
// replay over the same ledger is deterministic; if the caller cannot
// guarantee insertion order for same-day transactions, neither can the
// replay.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger from the given transactions, sorted
// chronologically.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: slices.Clone(txs)}
	l.stableSort()
	return l
}

// Append appends transactions and restores the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable,
// meaning transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in chronological
// order, optionally restricted by filters (a transaction is yielded when any
// filter accepts it; no filters means all).
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters transactions by symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Symbol == symbol }
}

// Symbols returns the distinct symbols traded in this ledger, sorted ascending.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]struct{})
	for _, tx := range l.transactions {
		seen[tx.Symbol] = struct{}{}
	}
	symbols := slices.Collect(maps.Keys(seen))
	slices.Sort(symbols)
	return symbols
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) NewestTransactionDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}
