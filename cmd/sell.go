package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ebal/folio"
	"github.com/ebal/folio/date"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	symbol   string
	quantity float64
	price    float64
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of shares" }
func (*sellCmd) Usage() string {
	return `fol sell -s <symbol> -q <quantity> -p <price> [-d <date>]

  Records a sale in the working account. The realized profit is the sale
  amount minus the average cost of the shares sold. Selling more shares than
  held is accepted and leaves a short position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "ticker symbol, e.g. AAPL")
	f.Float64Var(&c.quantity, "q", 0, "number of shares")
	f.Float64Var(&c.price, "p", 0, "price per share")
	f.StringVar(&c.date, "d", date.Today().String(), "transaction date (YYYY-MM-DD)")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(ctx, folio.Sell, c.symbol, c.quantity, c.price, c.date)
}
