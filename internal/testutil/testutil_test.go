package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/vtable"
)

func TestBuilder_WithRow_Defaults(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).WithRow("#1").Build()

	rows, err := txsource.QueryRows(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, []vtable.Row{
		{ID: "#1", Customer: "Test Customer", Amount: "$100.00", Status: vtable.StatusPaid},
	}, rows)
}

func TestBuilder_PreservesInsertionOrder(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).
		WithRow("#9").
		WithRow("#1").
		WithRow("#5").
		Build()

	rows, err := txsource.QueryRows(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "#9", rows[0].ID)
	require.Equal(t, "#1", rows[1].ID)
	require.Equal(t, "#5", rows[2].ID)
}

func TestBuilder_WithGeneratedRows(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	b := NewBuilder(t, db).WithGeneratedRows(7)
	require.Equal(t, 7, b.Len())
	b.Build()

	rows, err := txsource.QueryRows(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	require.Equal(t, "Riya A", rows[0].Customer)
	require.Equal(t, "$70.00", rows[6].Amount)
	require.Equal(t, vtable.StatusFailed, rows[2].Status)
	require.Equal(t, vtable.StatusPaid, rows[3].Status)
}

func TestPresets_Standard(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).WithStandardTestData().Build()

	rows, err := txsource.QueryRows(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	counts := map[vtable.Status]int{}
	for _, r := range rows {
		counts[r.Status]++
	}
	require.Equal(t, map[vtable.Status]int{
		vtable.StatusPaid:    3,
		vtable.StatusPending: 2,
		vtable.StatusFailed:  1,
	}, counts)
}

func TestPresets_SparseReadsAsEmptyStrings(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).WithSparseTestData().Build()

	rows, err := txsource.QueryRows(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Empty(t, rows[0].Customer)
	require.Empty(t, rows[1].Amount)
	require.Equal(t, vtable.Status("Refunded"), rows[1].Status)
	require.Empty(t, rows[2].Status)
	require.Equal(t, vtable.Row{ID: "#2004"}, rows[3])
}

func TestNewTestDBFile_LoadsThroughSource(t *testing.T) {
	db, path := NewTestDBFile(t)
	NewBuilder(t, db).WithGeneratedRows(12).Build()

	src, err := txsource.Open(path)
	require.NoError(t, err)
	require.Equal(t, "sqlite:"+path, src.Name())

	rows, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 12)
}
