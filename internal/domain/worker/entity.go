package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Worker struct {
	ID          string
	Name        string
	Phone       *string
	DailySalary decimal.Decimal
	Status      Status
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OnRoster reports whether the worker takes part in payroll aggregation.
func (w Worker) OnRoster() bool {
	return w.Status == StatusActive && !w.IsDeleted
}
