package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ebal/folio/renderer"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct {
	create string
	rename string
	remove bool
	id     int64
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "list, create, rename or delete accounts" }
func (*accountCmd) Usage() string {
	return `fol account [-new <name>] [-id <id> -rename <name>] [-id <id> -rm]

  Without flags, lists all accounts. Deleting an account deletes its whole
  transaction ledger.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "new", "", "create an account with this name")
	f.StringVar(&c.rename, "rename", "", "rename the account selected by -id")
	f.BoolVar(&c.remove, "rm", false, "delete the account selected by -id, and its ledger")
	f.Int64Var(&c.id, "id", 0, "account id for -rename and -rm")
}

func (c *accountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, s, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	switch {
	case c.create != "":
		a, err := s.CreateAccount(ctx, c.create)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Created account %q (id %d)\n", a.Name, a.ID)

	case c.rename != "":
		if c.id == 0 {
			return fail(fmt.Errorf("-rename requires -id"))
		}
		if err := s.RenameAccount(ctx, c.id, c.rename); err != nil {
			return fail(err)
		}
		fmt.Printf("Renamed account %d to %q\n", c.id, c.rename)

	case c.remove:
		if c.id == 0 {
			return fail(fmt.Errorf("-rm requires -id"))
		}
		if err := s.DeleteAccount(ctx, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted account %d and its transactions\n", c.id)

	default:
		accounts, err := s.Accounts(ctx)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.AccountsMarkdown(accounts))
	}
	return subcommands.ExitSuccess
}
