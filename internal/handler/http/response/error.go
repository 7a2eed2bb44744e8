package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

const updateInstead = ", update the existing record instead"

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Store-level reference checks surface as validation failures
	case errors.Is(err, attendance.ErrUnknownWorker):
		ValidationError(w, map[string]string{"workerId": err.Error()})
	case errors.Is(err, payroll.ErrUnknownWeeklySummary):
		ValidationError(w, map[string]string{"weeklySummaryId": err.Error()})

	// Conflicts
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, err.Error()+updateInstead)
	case errors.Is(err, payroll.ErrWeeklySummaryExists):
		Conflict(w, err.Error()+updateInstead)

	// Not found
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, payroll.ErrWeeklySummaryNotFound):
		NotFound(w, "Weekly summary not found")
	case errors.Is(err, payroll.ErrSalaryAdjustmentNotFound):
		NotFound(w, "Salary adjustment not found")
	case errors.Is(err, payroll.ErrNoActiveWorkers):
		NotFound(w, "No active workers found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
