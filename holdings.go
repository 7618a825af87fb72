package folio

import "sort"

// Holding is the externally visible row derived from a replayed ledger.
type Holding struct {
	Symbol      string
	Quantity    float64
	TotalCost   float64
	AvgPrice    float64
	RealizedPnL float64
}

// Holdings projects replayed state into the public holding list. Symbols
// that are fully closed with no realized profit are dropped as
// uninformative; closed positions that still carry a nonzero realized P&L
// stay visible with a zero quantity. Rows are sorted by symbol so the
// output is deterministic.
func Holdings(states map[string]*HoldingState) []Holding {
	holdings := make([]Holding, 0, len(states))
	for _, s := range states {
		if s.Quantity <= 0 && s.RealizedPnL == 0 {
			continue
		}
		holdings = append(holdings, Holding{
			Symbol:      s.Symbol,
			Quantity:    s.Quantity,
			TotalCost:   s.TotalCost,
			AvgPrice:    s.AvgPrice,
			RealizedPnL: s.RealizedPnL,
		})
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Symbol < holdings[j].Symbol })
	return holdings
}

// Holdings replays the ledger and projects the result.
func (l *Ledger) Holdings() []Holding {
	return Holdings(l.Replay())
}
