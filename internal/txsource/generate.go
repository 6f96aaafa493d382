// Package txsource produces transaction datasets for the table: generated
// mock data, JSON files and SQLite databases.
package txsource

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/zjrosen/txdash/internal/vtable"
)

var customerNames = [...]string{
	"Riya", "Arjun", "Nora", "Rahul", "Fatima",
	"John", "Meera", "Karan", "Akira", "Leah",
}

// Default dataset shape shown before any section is applied.
const (
	DefaultRows      = 10000
	DefaultBaseID    = 8451
	DefaultMinAmount = 20

	// SectionBaseID and SectionMinAmount shape the per-section datasets.
	SectionBaseID    = 1000
	SectionMinAmount = 10

	amountSpread = 1500
)

// GenerateOptions shapes a generated dataset.
type GenerateOptions struct {
	Rows      int
	BaseID    int
	MinAmount float64
	Statuses  []vtable.Status
	// Cycle assigns statuses[(i*7) % len] instead of drawing at random.
	Cycle bool
	// Rand drives amounts and random statuses. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// CustomerName returns the generated customer for row i, e.g. "Riya A".
func CustomerName(i int) string {
	return fmt.Sprintf("%s %c", customerNames[i%len(customerNames)], rune('A'+i%26))
}

// Generate builds opts.Rows mock transactions.
func Generate(opts GenerateOptions) []vtable.Row {
	if opts.Rows <= 0 {
		return []vtable.Row{}
	}
	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = vtable.Statuses()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	rows := make([]vtable.Row, opts.Rows)
	for i := range rows {
		var status vtable.Status
		if opts.Cycle {
			status = statuses[(i*7)%len(statuses)]
		} else {
			status = statuses[rng.IntN(len(statuses))]
		}
		rows[i] = vtable.Row{
			ID:       fmt.Sprintf("#%d", opts.BaseID+i),
			Customer: CustomerName(i),
			Amount:   fmt.Sprintf("$%.2f", rng.Float64()*amountSpread+opts.MinAmount),
			Status:   status,
		}
	}
	return rows
}

// DefaultDataset is the 10,000-row dataset shown when nothing else loads.
// Statuses cycle Paid, Pending, Failed by (i*7) % 3.
func DefaultDataset() []vtable.Row {
	return Generate(GenerateOptions{
		Rows:      DefaultRows,
		BaseID:    DefaultBaseID,
		MinAmount: DefaultMinAmount,
		Statuses:  vtable.Statuses(),
		Cycle:     true,
	})
}

// SectionDataset generates rows for a dashboard section with statuses drawn
// uniformly from the weighted list, so repeating a status skews the mix.
func SectionDataset(rows int, statuses []vtable.Status, rng *rand.Rand) []vtable.Row {
	return Generate(GenerateOptions{
		Rows:      rows,
		BaseID:    SectionBaseID,
		MinAmount: SectionMinAmount,
		Statuses:  statuses,
		Rand:      rng,
	})
}
