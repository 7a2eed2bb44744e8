package payroll

import (
	"context"
	"time"
)

// WeeklySummaryRepository defines data access methods for weekly summaries.
type WeeklySummaryRepository interface {
	// Create fails with ErrWeeklySummaryExists on a duplicate (worker, week)
	Create(ctx context.Context, summary WeeklySummary) (WeeklySummary, error)

	// GetByID returns the summary with Worker populated
	GetByID(ctx context.Context, id string) (WeeklySummary, error)

	List(ctx context.Context, filter WeeklySummaryFilter) ([]WeeklySummary, int64, error)

	// UpdatePaidStatus writes isPaid and paidAt as given
	UpdatePaidStatus(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (WeeklySummary, error)

	// Delete removes the summary; its adjustments cascade
	Delete(ctx context.Context, id string) (WeeklySummary, error)
}

// SalaryAdjustmentRepository defines data access methods for salary adjustments.
type SalaryAdjustmentRepository interface {
	// Create fails with ErrUnknownWeeklySummary when the parent does not exist
	Create(ctx context.Context, adjustment SalaryAdjustment) (SalaryAdjustment, error)
	GetByID(ctx context.Context, id string) (SalaryAdjustment, error)
	List(ctx context.Context, filter SalaryAdjustmentFilter) ([]SalaryAdjustment, int64, error)
	Update(ctx context.Context, req UpdateSalaryAdjustmentRequest) (SalaryAdjustment, error)
	Delete(ctx context.Context, id string) (SalaryAdjustment, error)

	ListByWeeklySummaryIDs(ctx context.Context, ids []string) ([]SalaryAdjustment, error)

	// ListWithinRange returns adjustments of every weekly summary whose week
	// lies inside [start, end], with WorkerID populated
	ListWithinRange(ctx context.Context, start, end time.Time) ([]SalaryAdjustment, error)
}
