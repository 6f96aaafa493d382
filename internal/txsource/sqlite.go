package txsource

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/vtable"
)

// Schema is the transactions table read by SQLite and written by Seed.
const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT NOT NULL,
	customer TEXT NOT NULL DEFAULT '',
	amount TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT ''
);
`

// SQLite reads rows from the transactions table in insertion order.
type SQLite struct {
	Path string
}

func (s SQLite) Name() string { return "sqlite:" + s.Path }

func (s SQLite) Load(ctx context.Context) ([]vtable.Row, error) {
	log.Debug(log.CatData, "Opening database", "path", s.Path)
	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer func() { _ = db.Close() }()

	return QueryRows(ctx, db)
}

// QueryRows selects every transaction from db. NULL columns become empty
// strings.
func QueryRows(ctx context.Context, db *sql.DB) ([]vtable.Row, error) {
	rs, err := db.QueryContext(ctx, `SELECT id, customer, amount, status FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rs.Close() }()

	rows := []vtable.Row{}
	for rs.Next() {
		var id, customer, amount, status sql.NullString
		if err := rs.Scan(&id, &customer, &amount, &status); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		rows = append(rows, vtable.Row{
			ID:       id.String,
			Customer: customer.String,
			Amount:   amount.String,
			Status:   vtable.Status(status.String),
		})
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return rows, nil
}

// Seed creates the transactions table at path if needed and replaces its
// contents with rows in a single transaction.
func Seed(ctx context.Context, path string, rows []vtable.Row) error {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	if err := SeedDB(ctx, db, rows); err != nil {
		return err
	}
	log.Info(log.CatData, "Seeded database", "path", path, "rows", len(rows))
	return nil
}

// SeedDB is Seed against an open database.
func SeedDB(ctx context.Context, db *sql.DB, rows []vtable.Row) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clearing transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transactions (id, customer, amount, status) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Customer, r.Amount, string(r.Status)); err != nil {
			return fmt.Errorf("inserting %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
