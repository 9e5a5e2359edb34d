// Package store persists parsed QIF transactions in a local SQLite
// database, so repeated imports of overlapping exports stay deduplicated.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/shopspring/decimal"

	"github.com/lox/qif"
)

// Store is a SQLite-backed transaction store.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// New opens the transaction database in dataDir, creating the directory and
// schema as needed.
func New(dataDir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "transactions.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			account_type TEXT NOT NULL,
			date TEXT NOT NULL,
			amount TEXT NOT NULL,
			payee TEXT NOT NULL,
			number TEXT,
			memo TEXT,
			address TEXT,
			category TEXT,
			status TEXT,
			split_category TEXT,
			split_memo TEXT,
			split_amount TEXT,
			source_file TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
		CREATE INDEX IF NOT EXISTS idx_transactions_payee ON transactions(payee);
	`)
	return err
}

// TransactionID derives a stable id from the fields that identify a
// transaction across imports, so re-importing the same export is an upsert
// rather than a duplicate row.
func TransactionID(accountType string, tx *qif.Transaction) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s",
		accountType,
		tx.Date.Format("2006-01-02"),
		tx.Amount.String(),
		tx.Payee,
		tx.Number,
		tx.Memo,
	)
	return hex.EncodeToString(h.Sum(nil))
}

// Store upserts a single transaction.
func (s *Store) Store(ctx context.Context, accountType, sourceFile string, tx *qif.Transaction) error {
	id := TransactionID(accountType, tx)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, account_type, date, amount, payee, number, memo, address,
			category, status, split_category, split_memo, split_amount, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			memo = excluded.memo,
			address = excluded.address,
			category = excluded.category,
			status = excluded.status,
			split_category = excluded.split_category,
			split_memo = excluded.split_memo,
			split_amount = excluded.split_amount,
			source_file = excluded.source_file
	`,
		id,
		accountType,
		tx.Date.Format("2006-01-02"),
		tx.Amount.String(),
		tx.Payee,
		tx.Number,
		tx.Memo,
		tx.Address,
		tx.Category,
		tx.Status,
		tx.SplitCategory,
		tx.SplitMemo,
		tx.SplitAmount.String(),
		sourceFile,
	)
	if err != nil {
		return fmt.Errorf("failed to store transaction: %v", err)
	}
	s.logger.Debug("stored transaction", "id", id, "payee", tx.Payee)
	return nil
}

// Record is a stored transaction row.
type Record struct {
	ID          string
	AccountType string
	Date        time.Time
	Amount      decimal.Decimal
	Payee       string
	Category    string
	Memo        string
	SourceFile  string
}

// List returns stored transactions ordered by date then payee. limit <= 0
// means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, account_type, date, amount, payee, category, memo, source_file
		FROM transactions
		ORDER BY date, payee
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %v", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var date, amount string
		if err := rows.Scan(&rec.ID, &rec.AccountType, &date, &amount,
			&rec.Payee, &rec.Category, &rec.Memo, &rec.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %v", err)
		}
		rec.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %v", date, err)
		}
		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %v", amount, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored transactions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %v", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
