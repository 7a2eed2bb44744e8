package payroll

import "context"

// WeeklySummaryService runs payroll aggregation across the active roster
type WeeklySummaryService interface {
	// CreateWeeklySummaries persists one summary per active worker for the week
	CreateWeeklySummaries(ctx context.Context, req CreateWeeklySummariesRequest) (CreateWeeklySummariesResponse, error)

	// GenerateWeeklyReport computes payroll figures for the range without writing anything
	GenerateWeeklyReport(ctx context.Context, req WeeklyReportRequest) (WeeklyReportResponse, error)

	List(ctx context.Context, filter WeeklySummaryFilter) (ListWeeklySummaryResponse, error)
	Get(ctx context.Context, id string) (WeeklySummaryResponse, error)
	Update(ctx context.Context, req UpdateWeeklySummaryRequest) (WeeklySummaryResponse, error)
	Delete(ctx context.Context, id string) (WeeklySummaryResponse, error)
}

// SalaryAdjustmentService is the adjustment ledger
type SalaryAdjustmentService interface {
	Create(ctx context.Context, req CreateSalaryAdjustmentRequest) (SalaryAdjustmentResponse, error)
	List(ctx context.Context, filter SalaryAdjustmentFilter) (ListSalaryAdjustmentResponse, error)
	Get(ctx context.Context, id string) (SalaryAdjustmentResponse, error)
	Update(ctx context.Context, req UpdateSalaryAdjustmentRequest) (SalaryAdjustmentResponse, error)
	Delete(ctx context.Context, id string) (SalaryAdjustmentResponse, error)
}
