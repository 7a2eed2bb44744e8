package attendance

import (
	"context"
)

// AttendanceService is the attendance ledger. It is the only source of
// attendance facts for payroll aggregation.
type AttendanceService interface {
	// Create records a single fact; a second record for the same worker and
	// date is rejected
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// BulkUpsert records a whole day; existing facts are overwritten
	BulkUpsert(ctx context.Context, req BulkUpsertAttendanceRequest) ([]AttendanceResponse, error)

	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) (AttendanceResponse, error)
}
