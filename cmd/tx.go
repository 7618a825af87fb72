package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ebal/folio/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	remove int64
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list or delete transactions of the working account" }
func (*txCmd) Usage() string {
	return `fol tx [-rm <id>]

  Without flags, lists the account's transactions in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.remove, "rm", 0, "delete the transaction with this id")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, s, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.remove != 0 {
		if err := s.DeleteTransaction(ctx, c.remove); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted transaction %d\n", c.remove)
		return subcommands.ExitSuccess
	}

	account, err := resolveAccount(ctx, s, cfg)
	if err != nil {
		return fail(err)
	}
	txs, err := s.Transactions(ctx, account.ID)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, cfg.Currency))
	return subcommands.ExitSuccess
}
