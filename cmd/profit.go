package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ebal/folio"
	"github.com/ebal/folio/date"
	"github.com/ebal/folio/renderer"
)

// profitCmd holds the flags for the 'profit' subcommand.
type profitCmd struct {
	date   string
	months int
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display realized profit over trailing windows" }
func (*profitCmd) Usage() string {
	return `fol profit [-d <date>] [-m <months>]

  Shows realized profit from sales over the trailing 1, 6 and 12 calendar
  months, and all time. With -m, shows a single custom window instead.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "reference date for the trailing windows (YYYY-MM-DD)")
	f.IntVar(&c.months, "m", 0, "report a single trailing window of this many months")
}

func (c *profitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, s, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	account, err := resolveAccount(ctx, s, cfg)
	if err != nil {
		return fail(err)
	}
	txs, err := s.Transactions(ctx, account.ID)
	if err != nil {
		return fail(err)
	}
	ledger := folio.NewLedger(txs...)

	if c.months > 0 {
		profit := ledger.PeriodProfit(c.months, today)
		fmt.Printf("Realized profit over the last %d months: %s\n",
			c.months, folio.M(profit, cfg.Currency).SignedString())
		return subcommands.ExitSuccess
	}

	report := ledger.NewProfitReport(today, cfg.Currency)
	printMarkdown(renderer.ProfitMarkdown(report))
	return subcommands.ExitSuccess
}
