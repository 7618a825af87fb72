package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ebal/folio"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the account ledger as JSONL" }
func (*exportCmd) Usage() string {
	return `fol export [-o <file>]

  Writes the working account's transactions as JSON lines, one transaction
  per line, in chronological order. Defaults to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file (defaults to stdout)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}

	if err := folio.EncodeLedger(out, folio.NewLedger(txs...)); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Printf("Exported %d transactions to %s\n", len(txs), c.output)
	}
	return subcommands.ExitSuccess
}
