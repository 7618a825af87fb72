package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ebal/folio"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSONL ledger into the account" }
func (*importCmd) Usage() string {
	return `fol import [-i <file>]

  Reads JSON lines as produced by 'fol export' and records them in the
  working account. Every line is validated before anything is written, so a
  malformed file imports nothing.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (defaults to stdin)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.input != "" {
		var err error
		in, err = os.Open(c.input)
		if err != nil {
			return fail(err)
		}
		defer in.Close()
	}

	ledger, err := folio.DecodeLedger(in)
	if err != nil {
		return fail(err)
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

	n := 0
	for _, tx := range ledger.Transactions() {
		tx.AccountID = account.ID
		if _, err := s.AddTransaction(ctx, tx); err != nil {
			return fail(fmt.Errorf("after %d imported transactions: %w", n, err))
		}
		n++
	}
	fmt.Printf("Imported %d transactions into account %q\n", n, account.Name)
	return subcommands.ExitSuccess
}
