package attendance

import (
	"time"
)

// DefaultWorkHours is recorded when the caller leaves workHours empty.
const DefaultWorkHours = 8.0

// Attendance is one worker's attendance fact for one calendar day.
// (WorkerID, Date) is unique.
type Attendance struct {
	ID        string
	WorkerID  string
	Date      time.Time
	IsPresent bool
	WorkHours float64
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName *string
}
