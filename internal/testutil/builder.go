package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/vtable"
)

// Builder accumulates transactions and inserts them in order.
type Builder struct {
	t    *testing.T
	db   *sql.DB
	rows []rowData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithRow adds a transaction with optional configuration.
func (b *Builder) WithRow(id string, opts ...RowOption) *Builder {
	row := defaultRow(id)
	for _, opt := range opts {
		opt(&row)
	}
	b.rows = append(b.rows, row)
	return b
}

// WithGeneratedRows adds n transactions "#1".."#n" with generated customer
// names and statuses cycling Paid, Pending, Failed.
func (b *Builder) WithGeneratedRows(n int) *Builder {
	statuses := vtable.Statuses()
	for i := range n {
		b.WithRow(fmt.Sprintf("#%d", i+1),
			Customer(txsource.CustomerName(i)),
			Amount(fmt.Sprintf("$%d.00", (i+1)*10)),
			Status(string(statuses[i%len(statuses)])))
	}
	return b
}

// Len returns the number of rows added so far.
func (b *Builder) Len() int { return len(b.rows) }

// Build inserts all accumulated rows into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, r := range b.rows {
		b.insertRow(r)
	}
}

func (b *Builder) insertRow(r rowData) {
	b.t.Helper()
	_, err := b.db.Exec(
		`INSERT INTO transactions (id, customer, amount, status) VALUES (?, ?, ?, ?)`,
		r.id, r.customer, r.amount, r.status,
	)
	require.NoError(b.t, err)
}
