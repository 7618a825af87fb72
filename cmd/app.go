// Package cmd implements the CLI application to manage equity accounts.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/ebal/folio/quote"
	"github.com/ebal/folio/store"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&accountCmd{},
	&buyCmd{},
	&sellCmd{},
	&txCmd{},
	&holdingCmd{},
	&profitCmd{},
	&exportCmd{},
	&importCmd{},
}

// As a CLI application it has a very short lived lifecycle, so globals are ok.

var configFile = flag.String("config", "folio.toml", "Path to the configuration file (TOML)")
var dbFile = flag.String("db", "", "Path to the sqlite database (overrides the config file)")
var accountName = flag.String("account", "", "Account to operate on (overrides the config file)")

// Config holds the application settings read from the TOML config file.
type Config struct {
	DB       string `toml:"db"`
	Currency string `toml:"currency"`
	Account  string `toml:"account"`

	Gemini struct {
		Model string `toml:"model"`
	} `toml:"gemini"`
}

// LoadConfig reads the config file named by the -config flag. A missing file
// is not an error: defaults and flags are enough to run.
func LoadConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(*configFile, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not read config %q: %w", *configFile, err)
	}
	applyDefaults(&cfg)
	if *dbFile != "" {
		cfg.DB = *dbFile
	}
	if *accountName != "" {
		cfg.Account = *accountName
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.DB) == "" {
		cfg.DB = "folio.db"
	}
	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = "USD"
	}
	if strings.TrimSpace(cfg.Gemini.Model) == "" {
		cfg.Gemini.Model = quote.DefaultModel
	}
}

// OpenStore loads the config and opens the database it names.
func OpenStore() (*Config, *store.Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

// resolveAccount picks the working account: the -account flag or config
// entry when set, otherwise the only account in the database.
func resolveAccount(ctx context.Context, s *store.Store, cfg *Config) (store.Account, error) {
	if name := strings.TrimSpace(cfg.Account); name != "" {
		a, err := s.AccountByName(ctx, name)
		if errors.Is(err, store.ErrNotFound) {
			return a, fmt.Errorf("account %q does not exist, create it with 'fol account -new %s'", name, name)
		}
		return a, err
	}
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return store.Account{}, err
	}
	switch len(accounts) {
	case 0:
		return store.Account{}, errors.New("no accounts yet, create one with 'fol account -new <name>'")
	case 1:
		return accounts[0], nil
	default:
		return store.Account{}, errors.New("several accounts exist, pick one with -account")
	}
}

// quoteProvider returns the live price provider, or quote.None when offline
// is requested or no API key is configured.
func quoteProvider(ctx context.Context, cfg *Config, offline bool) quote.Provider {
	if offline {
		return quote.None{}
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, holdings are valued at average cost")
		return quote.None{}
	}
	p, err := quote.NewSearcher(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		log.Warn().Err(err).Msg("could not start quote provider, holdings are valued at average cost")
		return quote.None{}
	}
	return p
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text if the renderer fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
