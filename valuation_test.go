package folio

import (
	"testing"
	"time"

	"github.com/ebal/folio/date"
)

func TestValuate_WithQuotes(t *testing.T) {
	holdings := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "AAPL", 10, 100),
		NewBuy(date.MustParse("2025-01-10"), "GOOG", 2, 1000),
		NewSell(date.MustParse("2025-02-10"), "GOOG", 1, 1500),
	).Holdings()

	quotes := map[string]Quote{
		"AAPL": {Price: 120, Change: 2.5, ChangePercent: 2.08, LastUpdated: time.Now()},
		"GOOG": {Price: 1400},
	}
	report := Valuate(holdings, quotes, "USD")

	if report.Stale {
		t.Errorf("report marked stale although every symbol has a quote")
	}
	if !almostEqual(report.TotalMarketValue, 10*120+1*1400) {
		t.Errorf("TotalMarketValue = %v, want %v", report.TotalMarketValue, 10*120+1*1400.0)
	}
	if !almostEqual(report.TotalCost, 1000+1000) {
		t.Errorf("TotalCost = %v, want 2000", report.TotalCost)
	}
	if !almostEqual(report.TotalUnrealized, (1200-1000)+(1400-1000)) {
		t.Errorf("TotalUnrealized = %v, want 600", report.TotalUnrealized)
	}
	if !almostEqual(report.TotalRealized, 500) {
		t.Errorf("TotalRealized = %v, want 500", report.TotalRealized)
	}
	for _, row := range report.Rows {
		if !row.Live {
			t.Errorf("row %s not marked live", row.Symbol)
		}
	}
}

func TestValuate_MissingQuoteFallsBackToAvgPrice(t *testing.T) {
	holdings := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "AAPL", 10, 100),
	).Holdings()

	report := Valuate(holdings, map[string]Quote{}, "USD")

	if !report.Stale {
		t.Errorf("report not marked stale although no quote was available")
	}
	row := report.Rows[0]
	if row.Live {
		t.Errorf("row marked live without a quote")
	}
	if !almostEqual(row.MarketPrice, 100) {
		t.Errorf("MarketPrice = %v, want fallback to avgPrice 100", row.MarketPrice)
	}
	// Valued at cost: no unrealized gain can be claimed.
	if !almostEqual(row.UnrealizedPnL, 0) {
		t.Errorf("UnrealizedPnL = %v, want 0 when valued at cost", row.UnrealizedPnL)
	}
}

func TestValuate_PartialQuoteMap(t *testing.T) {
	holdings := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "AAPL", 10, 100),
		NewBuy(date.MustParse("2025-01-10"), "GOOG", 2, 1000),
	).Holdings()

	report := Valuate(holdings, map[string]Quote{"AAPL": {Price: 110}}, "USD")

	if !report.Stale {
		t.Errorf("partial quote map must mark the report stale")
	}
	if !almostEqual(report.TotalMarketValue, 10*110+2*1000) {
		t.Errorf("TotalMarketValue = %v, want %v", report.TotalMarketValue, 10*110+2*1000.0)
	}
}

func TestValuate_ClosedPositionHasNoMarketValue(t *testing.T) {
	holdings := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "GOOG", 2, 1000),
		NewSell(date.MustParse("2025-02-10"), "GOOG", 2, 1200),
	).Holdings()

	report := Valuate(holdings, nil, "USD")
	if report.Stale {
		t.Errorf("a ledger with no open positions has nothing to go stale")
	}
	if !almostEqual(report.TotalMarketValue, 0) {
		t.Errorf("TotalMarketValue = %v, want 0 for a closed book", report.TotalMarketValue)
	}
	if !almostEqual(report.TotalRealized, 400) {
		t.Errorf("TotalRealized = %v, want 400", report.TotalRealized)
	}
}
