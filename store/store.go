// Package store persists accounts and their transaction ledgers in a local
// sqlite database. It is the ingestion boundary of the tracker: every
// transaction is validated (known account, BUY/SELL only, positive quantity
// and price, uppercased symbol) before it is written, so the accounting
// engine only ever sees well-formed data.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ebal/folio"
	"github.com/ebal/folio/date"
)

// ErrNotFound is returned when an account or transaction id does not exist.
var ErrNotFound = errors.New("not found")

// Account is a named container for one transaction ledger.
type Account struct {
	ID      int64
	Name    string
	Created time.Time
}

// Store is a sqlite-backed account and transaction repository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create database directory %q: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS accounts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  account_id INTEGER NOT NULL,
  symbol TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('BUY','SELL')),
  quantity REAL NOT NULL,
  price REAL NOT NULL,
  date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions(account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`)
	if err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}
	return nil
}

// CreateAccount creates a new account with the given name.
func (s *Store) CreateAccount(ctx context.Context, name string) (Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, errors.New("account name is empty")
	}
	created := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (name, created_at) VALUES (?, ?)`,
		name, created.Format(time.RFC3339))
	if err != nil {
		return Account{}, fmt.Errorf("could not create account %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Account{}, err
	}
	return Account{ID: id, Name: name, Created: created}, nil
}

// Account returns the account with the given id.
func (s *Store) Account(ctx context.Context, id int64) (Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

// AccountByName returns the account with the given name.
func (s *Store) AccountByName(ctx context.Context, name string) (Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM accounts WHERE name = ?`, strings.TrimSpace(name))
	return scanAccount(row)
}

// Accounts returns all accounts ordered by id.
func (s *Store) Accounts(ctx context.Context) ([]Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// RenameAccount changes the name of an existing account.
func (s *Store) RenameAccount(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("account name is empty")
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("could not rename account %d: %w", id, err)
	}
	return checkAffected(res)
}

// DeleteAccount removes an account and its whole transaction ledger.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("could not delete transactions of account %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete account %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

// AddTransaction validates and records a transaction, returning it with the
// assigned id. The symbol is uppercased and a zero date defaults to today;
// anything outside the BUY/SELL contract is rejected here and never reaches
// the engine.
func (s *Store) AddTransaction(ctx context.Context, tx folio.Transaction) (folio.Transaction, error) {
	tx, err := tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid transaction: %w", err)
	}
	if _, err := s.Account(ctx, tx.AccountID); err != nil {
		return tx, fmt.Errorf("account %d: %w", tx.AccountID, err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (account_id, symbol, type, quantity, price, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.AccountID, tx.Symbol, string(tx.Type), tx.Quantity, tx.Price, tx.Date.String())
	if err != nil {
		return tx, fmt.Errorf("could not record %s %s: %w", tx.Type, tx.Symbol, err)
	}
	tx.ID, err = res.LastInsertId()
	return tx, err
}

// Transactions returns the ledger slice of one account, ordered by date then
// insertion id. This ordering is the documented tie-break for same-day
// transactions: replays over it are deterministic.
func (s *Store) Transactions(ctx context.Context, accountID int64) ([]folio.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, symbol, type, quantity, price, date
		 FROM transactions WHERE account_id = ? ORDER BY date, id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions of account %d: %w", accountID, err)
	}
	defer rows.Close()

	var txs []folio.Transaction
	for rows.Next() {
		var tx folio.Transaction
		var typ, day string
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Symbol, &typ, &tx.Quantity, &tx.Price, &day); err != nil {
			return nil, err
		}
		if tx.Type, err = folio.ParseTxType(typ); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.ID, err)
		}
		if tx.Date, err = date.Parse(day); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.ID, err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// DeleteTransaction removes a single transaction by id.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete transaction %d: %w", id, err)
	}
	return checkAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (Account, error) {
	var a Account
	var created string
	if err := row.Scan(&a.ID, &a.Name, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Account{}, fmt.Errorf("account %d has invalid created_at %q: %w", a.ID, created, err)
	}
	a.Created = t
	return a, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
