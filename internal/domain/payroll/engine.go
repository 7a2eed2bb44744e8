package payroll

import (
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// AttendanceWage is the attendance-derived part of a worker's pay.
type AttendanceWage struct {
	DaysWorked      int
	BaseSalary      decimal.Decimal
	AttendanceCount int
	PresentDays     int
	AbsentDays      int
}

// ComputeAttendanceWage counts present days and prices each one at the full
// daily rate. Recorded work hours do not pro-rate the day, and days without a
// record earn nothing.
func ComputeAttendanceWage(dailySalary decimal.Decimal, records []attendance.Attendance) AttendanceWage {
	present := 0
	for _, r := range records {
		if r.IsPresent {
			present++
		}
	}

	return AttendanceWage{
		DaysWorked:      present,
		BaseSalary:      dailySalary.Mul(decimal.NewFromInt(int64(present))),
		AttendanceCount: len(records),
		PresentDays:     present,
		AbsentDays:      len(records) - present,
	}
}

// AdjustmentTotals holds one running sum per adjustment type.
type AdjustmentTotals struct {
	Bonus     decimal.Decimal
	Overtime  decimal.Decimal
	Deduction decimal.Decimal
	Advance   decimal.Decimal
}

// FoldAdjustments sums amounts by type. Unrecognised types are skipped.
func FoldAdjustments(adjustments []SalaryAdjustment) AdjustmentTotals {
	totals := AdjustmentTotals{
		Bonus:     decimal.Zero,
		Overtime:  decimal.Zero,
		Deduction: decimal.Zero,
		Advance:   decimal.Zero,
	}

	for _, a := range adjustments {
		switch a.Type {
		case AdjustmentBonus:
			totals.Bonus = totals.Bonus.Add(a.Amount)
		case AdjustmentOvertime:
			totals.Overtime = totals.Overtime.Add(a.Amount)
		case AdjustmentDeduction:
			totals.Deduction = totals.Deduction.Add(a.Amount)
		case AdjustmentAdvance:
			totals.Advance = totals.Advance.Add(a.Amount)
		}
	}

	return totals
}

// Net is bonus + overtime - deduction - advance.
func (t AdjustmentTotals) Net() decimal.Decimal {
	return t.Bonus.Add(t.Overtime).Sub(t.Deduction).Sub(t.Advance)
}

// FinalAmount applies the adjustments to the base salary. The result is not
// clamped and may be negative when advances exceed wages.
func FinalAmount(baseSalary decimal.Decimal, totals AdjustmentTotals) decimal.Decimal {
	return baseSalary.Add(totals.Net())
}
