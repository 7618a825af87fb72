package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ebal/folio"
	"github.com/ebal/folio/date"
	"github.com/ebal/folio/store"
)

// headings parses markdown and returns the text of every heading, keyed by
// level, so tests can assert document structure instead of raw strings.
func headings(t *testing.T, source string) map[int][]string {
	t.Helper()

	content := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	got := map[int][]string{}
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var sb strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(content))
				}
			}
			got[h.Level] = append(got[h.Level], sb.String())
		}
		return ast.WalkContinue, nil
	})
	return got
}

func TestHoldingsMarkdown(t *testing.T) {
	report := &folio.PortfolioReport{
		Date:     date.MustParse("2025-06-15"),
		Time:     time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC),
		Currency: "USD",
		Rows: []folio.ValuedHolding{
			{
				Holding:       folio.Holding{Symbol: "AAPL", Quantity: 10, TotalCost: 1500, AvgPrice: 150, RealizedPnL: 0},
				MarketPrice:   170,
				MarketValue:   1700,
				UnrealizedPnL: 200,
				Live:          true,
			},
			{
				Holding:     folio.Holding{Symbol: "MSFT", Quantity: 2, TotalCost: 600, AvgPrice: 300, RealizedPnL: 50},
				MarketPrice: 300,
				MarketValue: 600,
				Live:        false,
			},
		},
		TotalCost:        2100,
		TotalMarketValue: 2300,
		TotalUnrealized:  200,
		TotalRealized:    50,
		Stale:            true,
	}

	out := HoldingsMarkdown(report)

	h := headings(t, out)
	if len(h[1]) != 1 || h[1][0] != "Holdings" {
		t.Errorf("want H1 %q, got %v", "Holdings", h[1])
	}
	if len(h[2]) != 1 || h[2][0] != "Totals" {
		t.Errorf("want H2 %q, got %v", "Totals", h[2])
	}

	for _, want := range []string{
		"AAPL", "$170.00", "+$200.00",
		"MSFT", "$300.00 *",
		"$2,100.00", "$2,300.00", "+$50.00",
		"no live price",
		"2025-06-15", "14:30:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	report := &folio.PortfolioReport{
		Date:     date.MustParse("2025-06-15"),
		Time:     time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC),
		Currency: "USD",
	}
	out := HoldingsMarkdown(report)
	if !strings.Contains(out, "No holdings.") {
		t.Errorf("want empty notice, got:\n%s", out)
	}
	if strings.Contains(out, "Totals") {
		t.Errorf("empty report should not carry a totals section:\n%s", out)
	}
}

func TestProfitMarkdown(t *testing.T) {
	report := &folio.ProfitReport{
		Date:     date.MustParse("2025-06-15"),
		Currency: "USD",
		Month1:   100,
		Month6:   250,
		Month12:  -75.5,
		AllTime:  1000,
	}
	out := ProfitMarkdown(report)

	h := headings(t, out)
	if len(h[1]) != 1 || h[1][0] != "Realized Profit" {
		t.Errorf("want H1 %q, got %v", "Realized Profit", h[1])
	}
	for _, want := range []string{
		"1 month", "+$100.00",
		"6 months", "+$250.00",
		"12 months", "-$75.50",
		"All time", "+$1,000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAccountsMarkdown(t *testing.T) {
	accounts := []store.Account{
		{ID: 1, Name: "brokerage", Created: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "retirement", Created: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
	out := AccountsMarkdown(accounts)

	h := headings(t, out)
	if len(h[1]) != 1 || h[1][0] != "Accounts" {
		t.Errorf("want H1 %q, got %v", "Accounts", h[1])
	}
	for _, want := range []string{"brokerage", "retirement", "2025-01-02", "2025-03-04"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if out := AccountsMarkdown(nil); !strings.Contains(out, "No accounts.") {
		t.Errorf("want empty notice, got:\n%s", out)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []folio.Transaction{
		{ID: 1, Symbol: "AAPL", Type: folio.Buy, Quantity: 10, Price: 150, Date: date.MustParse("2025-01-10")},
		{ID: 2, Symbol: "AAPL", Type: folio.Sell, Quantity: 4, Price: 170.25, Date: date.MustParse("2025-02-20")},
	}
	out := TransactionsMarkdown(txs, "USD")

	for _, want := range []string{
		"BUY", "SELL", "AAPL",
		"2025-01-10", "2025-02-20",
		"$150.00", "$170.25",
		"$1,500.00", "$681.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if out := TransactionsMarkdown(nil, "USD"); !strings.Contains(out, "No transactions.") {
		t.Errorf("want empty notice, got:\n%s", out)
	}
}
