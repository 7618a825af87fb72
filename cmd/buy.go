package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ebal/folio"
	"github.com/ebal/folio/date"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	symbol   string
	quantity float64
	price    float64
	date     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares" }
func (*buyCmd) Usage() string {
	return `fol buy -s <symbol> -q <quantity> -p <price> [-d <date>]

  Records a buy in the working account. The average cost of the position is
  recomputed from the whole ledger on every report.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "ticker symbol, e.g. AAPL")
	f.Float64Var(&c.quantity, "q", 0, "number of shares")
	f.Float64Var(&c.price, "p", 0, "price per share")
	f.StringVar(&c.date, "d", date.Today().String(), "transaction date (YYYY-MM-DD)")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(ctx, folio.Buy, c.symbol, c.quantity, c.price, c.date)
}

// recordTransaction is shared by 'buy' and 'sell'.
func recordTransaction(ctx context.Context, typ folio.TxType, symbol string, quantity, price float64, day string) subcommands.ExitStatus {
	on, err := date.Parse(day)
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

	tx := folio.Transaction{
		AccountID: account.ID,
		Symbol:    symbol,
		Type:      typ,
		Quantity:  quantity,
		Price:     price,
		Date:      on,
	}
	tx, err = s.AddTransaction(ctx, tx)
	if err != nil {
		return fail(err)
	}

	amount := folio.M(tx.Amount(), cfg.Currency)
	fmt.Printf("Recorded %s %s x %g @ %s (%s) in account %q, id %d\n",
		tx.Type, tx.Symbol, tx.Quantity, folio.M(tx.Price, cfg.Currency), amount, account.Name, tx.ID)
	return subcommands.ExitSuccess
}
