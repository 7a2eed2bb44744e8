package payroll

import "errors"

var (
	ErrWeeklySummaryNotFound    = errors.New("weekly summary not found")
	ErrWeeklySummaryExists      = errors.New("weekly summary already exists for this worker and week")
	ErrNoActiveWorkers          = errors.New("no active workers found")
	ErrSalaryAdjustmentNotFound = errors.New("salary adjustment not found")
	ErrUnknownWeeklySummary     = errors.New("weekly summary does not exist")
)
