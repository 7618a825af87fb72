package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/ebal/folio"
	"github.com/ebal/folio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	offline  bool
	currency string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current holdings with market valuation" }
func (*holdingCmd) Usage() string {
	return `fol holding [-offline] [-c <currency>]

  Replays the account ledger into current positions and values them at live
  prices. Without a price source, positions are valued at average cost and
  flagged stale.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "skip live price fetching")
	f.StringVar(&c.currency, "c", "", "reporting currency (overrides the config file)")
}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, s, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	defer s.Close()

	if c.currency != "" {
		cfg.Currency = c.currency
	}

	account, err := resolveAccount(ctx, s, cfg)
	if err != nil {
		return fail(err)
	}
	txs, err := s.Transactions(ctx, account.ID)
	if err != nil {
		return fail(err)
	}

	ledger := folio.NewLedger(txs...)
	holdings := ledger.Holdings()

	quotes := map[string]folio.Quote{}
	if symbols := openSymbols(holdings); len(symbols) > 0 {
		provider := quoteProvider(ctx, cfg, c.offline)
		quotes, err = provider.Fetch(ctx, symbols)
		if err != nil {
			// A dead price source degrades the report, it does not kill it.
			log.Warn().Err(err).Msg("price fetch failed, holdings are valued at average cost")
			quotes = map[string]folio.Quote{}
		}
	}

	report := folio.Valuate(holdings, quotes, cfg.Currency)
	printMarkdown(renderer.HoldingsMarkdown(report))
	return subcommands.ExitSuccess
}

// openSymbols lists the symbols worth quoting, skipping closed positions.
func openSymbols(holdings []folio.Holding) []string {
	var symbols []string
	for _, h := range holdings {
		if h.Quantity > 0 {
			symbols = append(symbols, h.Symbol)
		}
	}
	return symbols
}
