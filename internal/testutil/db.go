// Package testutil provides test utilities for transaction database setup.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/txsource"
)

// NewTestDB creates an in-memory SQLite database with the transactions
// schema. The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(txsource.Schema)
	require.NoError(t, err)
	return db
}

// NewTestDBFile creates a SQLite database file with the transactions schema
// in a temp directory and returns it with its path. The database is closed
// when the test ends.
func NewTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.db")
	db, err := sql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(txsource.Schema)
	require.NoError(t, err)
	return db, path
}
