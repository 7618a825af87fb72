package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ebal/folio/quote"
	"github.com/ebal/folio/store"
)

func TestLoadConfig_Defaults(t *testing.T) {
	*configFile = filepath.Join(t.TempDir(), "missing.toml")
	*dbFile = ""
	*accountName = ""

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with a missing file failed: %v", err)
	}
	if cfg.DB != "folio.db" || cfg.Currency != "USD" || cfg.Gemini.Model != quote.DefaultModel {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_FileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.toml")
	content := `
db = "ledger.db"
currency = "EUR"
account = "main"

[gemini]
model = "gemini-2.5-pro"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	*configFile = path
	*dbFile = filepath.Join(dir, "override.db")
	*accountName = ""

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Currency != "EUR" || cfg.Account != "main" || cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("config file not honored: %+v", cfg)
	}
	if cfg.DB != *dbFile {
		t.Errorf("-db flag should win over the config file: got %q", cfg.DB)
	}
}

func TestResolveAccount(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	cfg := &Config{}
	if _, err := resolveAccount(ctx, s, cfg); err == nil {
		t.Errorf("resolveAccount with no accounts should fail")
	}

	a, _ := s.CreateAccount(ctx, "main")
	got, err := resolveAccount(ctx, s, cfg)
	if err != nil || got.ID != a.ID {
		t.Errorf("resolveAccount with a single account = %+v, %v, want it picked", got, err)
	}

	s.CreateAccount(ctx, "second")
	if _, err := resolveAccount(ctx, s, cfg); err == nil {
		t.Errorf("resolveAccount with several accounts and no selection should fail")
	}

	cfg.Account = "second"
	got, err = resolveAccount(ctx, s, cfg)
	if err != nil || got.Name != "second" {
		t.Errorf("resolveAccount by name = %+v, %v, want account %q", got, err, "second")
	}

	cfg.Account = "ghost"
	if _, err := resolveAccount(ctx, s, cfg); err == nil {
		t.Errorf("resolveAccount with an unknown name should fail")
	}
}
