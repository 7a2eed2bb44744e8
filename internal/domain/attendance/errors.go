package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance for this worker and date already exists")
	ErrUnknownWorker      = errors.New("worker does not exist")
)
