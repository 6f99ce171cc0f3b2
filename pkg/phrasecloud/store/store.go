package store

import (
	"context"
	"time"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/freq"
)

// Run is one recorded corpus analysis.
type Run struct {
	ID        string
	Root      string
	CreatedAt time.Time
	Files     int
	Tokens    uint64
}

// Store persists finished runs and their frequency tables, so old corpora
// can be compared or re-exported without re-scanning.
type Store interface {
	Close() error

	// SaveRun records a run and all of its tables, keyed by n-gram order.
	// A zero ID and CreatedAt are filled in; the completed Run is returned.
	SaveRun(ctx context.Context, run Run, tables map[int]*freq.Table) (Run, error)

	ListRuns(ctx context.Context) ([]Run, error)
	GetRun(ctx context.Context, id string) (Run, error)

	// GetTable rebuilds the stored table for one order of a run,
	// preserving the original insertion order for stable tie-breaks.
	GetTable(ctx context.Context, runID string, order int) (*freq.Table, error)

	// Orders returns the n-gram orders stored for a run, ascending.
	Orders(ctx context.Context, runID string) ([]int, error)
}
