// Package folio implements the accounting engine of a multi-account equity
// portfolio tracker. It folds a chronological ledger of buy and sell
// transactions into per-symbol holding state using the average-cost-basis
// method, and derives the views built on top of that fold:
//
//   - Replay: the deterministic ledger fold that produces quantity, cost
//     basis, average price and realized profit per symbol.
//   - Holdings: the projection of replayed state into the rows worth
//     showing (open positions, or closed ones with realized profit).
//   - PeriodProfit: realized profit restricted to sales inside a trailing
//     calendar-month window, computed by replaying the whole ledger so the
//     cost basis at each sale reflects the entire preceding history.
//   - Valuate: holdings combined with an externally supplied price map,
//     yielding unrealized profit and portfolio totals.
//
// The engine is pure computation over an in-memory transaction list: it
// fetches no prices, persists nothing, and every call builds and discards
// its own accumulator. Persistence lives in the store package, live price
// lookup in the quote package, and presentation in renderer and cmd.
package folio
