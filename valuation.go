package folio

import (
	"time"

	"github.com/ebal/folio/date"
)

// Quote is a live market price for one symbol, as supplied by an external
// price collaborator. Change and ChangePercent are zero when the source did
// not provide them.
type Quote struct {
	Price         float64
	Change        float64
	ChangePercent float64
	LastUpdated   time.Time
}

// ValuedHolding is a holding enriched with a market price. Live is false
// when no quote was available and the average price was used instead.
type ValuedHolding struct {
	Holding
	MarketPrice   float64
	MarketValue   float64
	UnrealizedPnL float64
	Change        float64
	ChangePercent float64
	Live          bool
}

// PortfolioReport is the valuation of a set of holdings against a price map.
type PortfolioReport struct {
	Date             date.Date
	Time             time.Time // generation time
	Currency         string
	Rows             []ValuedHolding
	TotalCost        float64
	TotalMarketValue float64
	TotalUnrealized  float64
	TotalRealized    float64
	Stale            bool // true when at least one row fell back to its average price
}

// Valuate combines holdings with an externally supplied price map. A symbol
// missing from the map is not an error: the row falls back to its average
// price, carries no unrealized gain, and the report is flagged stale. An
// empty map therefore values every open position at cost, never a failure.
func Valuate(holdings []Holding, quotes map[string]Quote, currency string) *PortfolioReport {
	now := time.Now()
	report := &PortfolioReport{
		Date:     date.FromTime(now),
		Time:     now,
		Currency: currency,
		Rows:     make([]ValuedHolding, 0, len(holdings)),
	}
	for _, h := range holdings {
		row := ValuedHolding{Holding: h, MarketPrice: h.AvgPrice}
		if q, ok := quotes[h.Symbol]; ok && q.Price > 0 {
			row.MarketPrice = q.Price
			row.Change = q.Change
			row.ChangePercent = q.ChangePercent
			row.Live = true
		}
		if h.Quantity > 0 {
			row.MarketValue = h.Quantity * row.MarketPrice
			row.UnrealizedPnL = row.MarketValue - h.TotalCost
			if !row.Live {
				report.Stale = true
			}
		}
		report.Rows = append(report.Rows, row)

		report.TotalCost += h.TotalCost
		report.TotalMarketValue += row.MarketValue
		report.TotalUnrealized += row.UnrealizedPnL
		report.TotalRealized += h.RealizedPnL
	}
	return report
}
