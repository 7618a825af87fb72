// Package renderer turns portfolio reports into markdown suitable for the
// terminal (rendered by the CLI) or for piping to a file.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/ebal/folio"
	"github.com/ebal/folio/store"
)

// HoldingsMarkdown renders a valuation report: one row per holding plus a
// totals table. Rows valued at their average price for lack of a live quote
// are marked with an asterisk.
func HoldingsMarkdown(r *folio.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	doc.PlainText(fmt.Sprintf("As of %s (%s)", r.Date, r.Time.Format("15:04:05")))

	if len(r.Rows) == 0 {
		doc.PlainText("No holdings.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Quantity", "Avg Price", "Price", "Market Value", "Unrealized", "Realized"},
	}
	for _, row := range r.Rows {
		price := folio.M(row.MarketPrice, r.Currency).String()
		if !row.Live {
			price += " *"
		}
		table.Rows = append(table.Rows, []string{
			row.Symbol,
			quantity(row.Quantity),
			folio.M(row.AvgPrice, r.Currency).String(),
			price,
			folio.M(row.MarketValue, r.Currency).String(),
			folio.M(row.UnrealizedPnL, r.Currency).SignedString(),
			folio.M(row.RealizedPnL, r.Currency).SignedString(),
		})
	}
	doc.Table(table)

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Cost", "Market Value", "Unrealized", "Realized"},
		Rows: [][]string{{
			folio.M(r.TotalCost, r.Currency).String(),
			folio.M(r.TotalMarketValue, r.Currency).String(),
			folio.M(r.TotalUnrealized, r.Currency).SignedString(),
			folio.M(r.TotalRealized, r.Currency).SignedString(),
		}},
	})

	if r.Stale {
		doc.PlainText("`*` no live price this cycle, valued at average cost.")
	}
	doc.Build()
	return buf.String()
}

// ProfitMarkdown renders realized profit over the trailing windows.
func ProfitMarkdown(r *folio.ProfitReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Realized Profit")
	doc.PlainText(fmt.Sprintf("As of %s", r.Date))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Window", "Profit"},
		Rows: [][]string{
			{"1 month", folio.M(r.Month1, r.Currency).SignedString()},
			{"6 months", folio.M(r.Month6, r.Currency).SignedString()},
			{"12 months", folio.M(r.Month12, r.Currency).SignedString()},
			{"All time", folio.M(r.AllTime, r.Currency).SignedString()},
		},
	})
	doc.Build()
	return buf.String()
}

// AccountsMarkdown renders the account list.
func AccountsMarkdown(accounts []store.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts. Create one with `fol account -new <name>`.")
		doc.Build()
		return buf.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Name", "Created"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Created.Format("2006-01-02"),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// TransactionsMarkdown renders one account's ledger in chronological order.
func TransactionsMarkdown(txs []folio.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		doc.Build()
		return buf.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Type", "Symbol", "Quantity", "Price", "Amount"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Date.String(),
			string(tx.Type),
			tx.Symbol,
			quantity(tx.Quantity),
			folio.M(tx.Price, currency).String(),
			folio.M(tx.Amount(), currency).String(),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// quantity formats a unit count without trailing float noise.
func quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
