package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create fails with ErrAttendanceExists when (worker, date) is taken
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Upsert updates the existing (worker, date) row or inserts a new one
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByWorkerAndRange returns the worker's facts with date in [start, end]
	ListByWorkerAndRange(ctx context.Context, workerID string, start, end time.Time) ([]Attendance, error)

	// ListByRange returns every fact with date in [start, end]
	ListByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	Update(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) (Attendance, error)
}
