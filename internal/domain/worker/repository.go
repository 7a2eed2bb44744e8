package worker

import "context"

// WorkerRepository defines data access methods for the worker roster.
type WorkerRepository interface {
	Create(ctx context.Context, worker Worker) (Worker, error)

	// GetByID returns the worker regardless of status or soft-delete flag.
	GetByID(ctx context.Context, id string) (Worker, error)

	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)

	// ListActive returns the active roster (ACTIVE and not soft-deleted),
	// ordered by name then id.
	ListActive(ctx context.Context) ([]Worker, error)

	Update(ctx context.Context, req UpdateWorkerRequest) (Worker, error)
	SoftDelete(ctx context.Context, id string) (Worker, error)

	// Delete removes the row; attendance and weekly summaries cascade.
	Delete(ctx context.Context, id string) (Worker, error)
}
