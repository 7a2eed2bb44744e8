package attendance

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	WorkerID  string   `json:"workerId"`
	Date      string   `json:"date"` // YYYY-MM-DD
	IsPresent bool     `json:"isPresent"`
	WorkHours *float64 `json:"workHours,omitempty"`
	Note      *string  `json:"note,omitempty"`

	ParsedDate time.Time `json:"-"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs.Add("workerId", "workerId must be a valid id")
	}
	r.ParsedDate = validator.RequireDate(&errs, "date", r.Date)
	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs.Add("workHours", "workHours must not be negative")
	}

	return errs.Err()
}

type BulkAttendanceItem struct {
	WorkerID  string   `json:"workerId"`
	IsPresent bool     `json:"isPresent"`
	WorkHours *float64 `json:"workHours,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

type BulkUpsertAttendanceRequest struct {
	Date        string               `json:"date"`
	Attendances []BulkAttendanceItem `json:"attendances"`

	ParsedDate time.Time `json:"-"`
}

func (r *BulkUpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.ParsedDate = validator.RequireDate(&errs, "date", r.Date)
	if len(r.Attendances) == 0 {
		errs.Add("attendances", "at least one attendance is required")
	}
	for i, item := range r.Attendances {
		prefix := "attendances[" + strconv.Itoa(i) + "]"
		if !validator.IsValidUUID(item.WorkerID) {
			errs.Add(prefix+".workerId", "workerId must be a valid id")
		}
		if item.WorkHours != nil && *item.WorkHours < 0 {
			errs.Add(prefix+".workHours", "workHours must not be negative")
		}
	}

	return errs.Err()
}

// UpdateAttendanceRequest lets an administrator correct a recorded fact
type UpdateAttendanceRequest struct {
	ID        string   `json:"-"`
	Date      *string  `json:"date,omitempty"` // YYYY-MM-DD
	IsPresent *bool    `json:"isPresent,omitempty"`
	WorkHours *float64 `json:"workHours,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	validator.OptionalDate(&errs, "date", r.Date)
	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs.Add("workHours", "workHours must not be negative")
	}

	return errs.Err()
}

type AttendanceFilter struct {
	// Search & Filter
	SearchTerm *string `json:"searchTerm,omitempty"` // matched against note
	WorkerID   *string `json:"workerId,omitempty"`
	IsPresent  *bool   `json:"isPresent,omitempty"`
	StartDate  *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"endDate,omitempty"`   // YYYY-MM-DD

	pagination.Params
}

var attendanceSortFields = []string{"date", "worker_name", "created_at"}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.Merge(f.Params.Normalize(attendanceSortFields, "date"))
	if f.WorkerID != nil && !validator.IsValidUUID(*f.WorkerID) {
		errs.Add("workerId", "workerId must be a valid id")
	}
	validator.OptionalDate(&errs, "startDate", f.StartDate)
	validator.OptionalDate(&errs, "endDate", f.EndDate)

	return errs.Err()
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"workerId"`
	WorkerName *string `json:"workerName,omitempty"`
	Date       string  `json:"date"`
	IsPresent  bool    `json:"isPresent"`
	WorkHours  float64 `json:"workHours"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type ListAttendanceResponse struct {
	Meta pagination.Meta      `json:"meta"`
	Data []AttendanceResponse `json:"data"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		WorkerName: a.WorkerName,
		Date:       a.Date.Format(validator.DateLayout),
		IsPresent:  a.IsPresent,
		WorkHours:  a.WorkHours,
		Note:       a.Note,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, ToResponse(a))
	}
	return result
}
