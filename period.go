package folio

import "github.com/ebal/folio/date"

// PeriodProfit returns the realized profit of sales dated on or after
// today minus the given number of calendar months.
//
// This is not the same as summing realized P&L of in-window transactions in
// isolation: the average price at the moment of a sale depends on the entire
// preceding history, including buys and sells long before the window. So the
// whole ledger is replayed with the exact same average-cost rules as Replay
// (continuous running basis, zero-reset on close), and only the profit
// contribution of sales whose date falls inside the window is added to the
// returned total. Buys before the cutoff still move the average price; they
// are never skipped.
//
// The cutoff uses calendar-month arithmetic (date.AddMonths), not 30-day
// blocks, and a sale on the cutoff day counts. Each call replays the ledger
// independently; nothing is shared with Replay or with other windows.
func (l *Ledger) PeriodProfit(months int, today date.Date) float64 {
	cutoff := today.AddMonths(-months)
	states := make(map[string]*HoldingState)
	var profit float64
	for _, tx := range l.Transactions() {
		s, ok := states[tx.Symbol]
		if !ok {
			s = &HoldingState{Symbol: tx.Symbol}
			states[tx.Symbol] = s
		}
		before := s.RealizedPnL
		s.apply(tx)
		if tx.Type == Sell && !tx.Date.Before(cutoff) {
			profit += s.RealizedPnL - before
		}
	}
	return profit
}

// RealizedProfit returns the all-time realized profit across every symbol
// in the ledger.
func (l *Ledger) RealizedProfit() float64 {
	var profit float64
	for _, s := range l.Replay() {
		profit += s.RealizedPnL
	}
	return profit
}

// ProfitReport aggregates realized profit over the standard trailing
// windows, each computed by an independent full replay.
type ProfitReport struct {
	Date     date.Date
	Month1   float64
	Month6   float64
	Month12  float64
	AllTime  float64
	Currency string
}

// NewProfitReport computes the 1, 6 and 12 month trailing windows plus the
// all-time realized profit as of the given day.
func (l *Ledger) NewProfitReport(today date.Date, currency string) *ProfitReport {
	return &ProfitReport{
		Date:     today,
		Month1:   l.PeriodProfit(1, today),
		Month6:   l.PeriodProfit(6, today),
		Month12:  l.PeriodProfit(12, today),
		AllTime:  l.RealizedProfit(),
		Currency: currency,
	}
}
