package folio

// HoldingState is the running per-symbol accumulator of a ledger replay.
// It exists only for the duration of one Replay call and is never persisted.
type HoldingState struct {
	Symbol      string
	Quantity    float64 // net units held; negative only after an oversell
	TotalCost   float64 // cost basis of the currently open position
	AvgPrice    float64 // TotalCost / Quantity while Quantity > 0, else 0
	RealizedPnL float64 // profit crystallized by sales over the whole history
}

// Replay folds the ledger into per-symbol holding state using the
// average-cost-basis method.
//
// On a buy the average price is recomputed as the weighted average of the
// position. On a sell the cost of the sold units is valued at the pre-sale
// average price, the difference to the proceeds is realized, and the basis
// shrinks by that cost; the average price of the remaining units does not
// move. When a sell closes the position (quantity <= 0 afterwards) the cost
// basis and average price reset to zero. An oversell is not rejected: the
// quantity goes negative with a zeroed basis, and a later buy restarts the
// basis from zero. Callers that want to reject oversells must do so before
// the transaction reaches the ledger.
//
// Replay is a pure function: it allocates a fresh accumulator per call and
// never mutates the ledger.
func (l *Ledger) Replay() map[string]*HoldingState {
	states := make(map[string]*HoldingState)
	for _, tx := range l.Transactions() {
		s, ok := states[tx.Symbol]
		if !ok {
			s = &HoldingState{Symbol: tx.Symbol}
			states[tx.Symbol] = s
		}
		s.apply(tx)
	}
	return states
}

// apply advances the state by one transaction.
func (s *HoldingState) apply(tx Transaction) {
	switch tx.Type {
	case Buy:
		s.Quantity += tx.Quantity
		s.TotalCost += tx.Quantity * tx.Price
		s.AvgPrice = s.TotalCost / s.Quantity // quantity > 0 after a buy
	case Sell:
		costOfSold := tx.Quantity * s.AvgPrice
		s.RealizedPnL += tx.Quantity*tx.Price - costOfSold
		s.Quantity -= tx.Quantity
		s.TotalCost -= costOfSold
		if s.Quantity <= 0 {
			// Position closed (or oversold): the tracked basis is gone.
			s.TotalCost = 0
			s.AvgPrice = 0
		}
	}
}
