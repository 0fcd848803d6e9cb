package store

import (
	"context"
	"time"

	"cpusched/internal/requests"
	"cpusched/internal/responses"
)

// Run is one executed simulation as kept in the history.
type Run struct {
	ID          string
	Algorithm   string
	TimeQuantum int
	Request     requests.ScheduleRequests
	Response    responses.ScheduleResponse
	CreatedAt   time.Time
}

// Store persists simulation runs.
type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	// GetRun returns nil, nil when no run has the id.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the newest runs first along with the total count.
	ListRuns(ctx context.Context, limit, offset int) ([]*Run, int, error)
	Close() error
}
