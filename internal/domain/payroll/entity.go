package payroll

import (
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// AdjustmentType enum
type AdjustmentType string

const (
	AdjustmentBonus     AdjustmentType = "BONUS"
	AdjustmentOvertime  AdjustmentType = "OVERTIME"
	AdjustmentDeduction AdjustmentType = "DEDUCTION"
	AdjustmentAdvance   AdjustmentType = "ADVANCE"
)

func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentBonus, AdjustmentOvertime, AdjustmentDeduction, AdjustmentAdvance:
		return true
	}
	return false
}

// WeeklySummary - persisted per-worker payroll snapshot for a date range.
// TotalSalary holds attendance wages only; adjustments are applied when a
// report is generated.
type WeeklySummary struct {
	ID              string
	WorkerID        string
	WeekStartDate   time.Time
	WeekEndDate     time.Time
	TotalDaysWorked int
	TotalSalary     decimal.Decimal
	IsPaid          bool
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	Worker      *worker.Worker
	Adjustments []SalaryAdjustment
}

// SalaryAdjustment - ad-hoc amount owned by one WeeklySummary
type SalaryAdjustment struct {
	ID              string
	WeeklySummaryID string
	Type            AdjustmentType
	Amount          decimal.Decimal
	Reason          *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	WorkerID *string
}
