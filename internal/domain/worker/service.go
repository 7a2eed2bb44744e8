package worker

import "context"

// WorkerService defines roster management for administrators
type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	List(ctx context.Context, filter WorkerFilter) (ListWorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	SoftDelete(ctx context.Context, id string) (WorkerResponse, error)
	HardDelete(ctx context.Context, id string) (WorkerResponse, error)
}
