package payroll

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// GenerateWeeklyReport implements payroll.WeeklySummaryService.
// It reads the roster, the attendance and the adjustments of the range once
// each and never writes.
func (s *WeeklySummaryServiceImpl) GenerateWeeklyReport(ctx context.Context, req payroll.WeeklyReportRequest) (payroll.WeeklyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	var (
		workers     []worker.Worker
		records     []attendance.Attendance
		adjustments []payroll.SalaryAdjustment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		workers, err = s.workerRepo.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load active workers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByRange(gCtx, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		adjustments, err = s.adjustmentRepo.ListWithinRange(gCtx, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("failed to load salary adjustments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	attendanceByWorker := make(map[string][]attendance.Attendance)
	for _, r := range records {
		attendanceByWorker[r.WorkerID] = append(attendanceByWorker[r.WorkerID], r)
	}
	adjustmentsByWorker := make(map[string][]payroll.SalaryAdjustment)
	for _, a := range adjustments {
		if a.WorkerID == nil {
			continue
		}
		adjustmentsByWorker[*a.WorkerID] = append(adjustmentsByWorker[*a.WorkerID], a)
	}

	rows := make([]payroll.WorkerReportRow, 0, len(workers))
	summary := payroll.ReportSummary{
		TotalBaseSalary:  decimal.Zero,
		TotalBonus:       decimal.Zero,
		TotalOvertime:    decimal.Zero,
		TotalDeduction:   decimal.Zero,
		TotalAdvance:     decimal.Zero,
		TotalFinalAmount: decimal.Zero,
	}

	for _, w := range workers {
		if !w.OnRoster() {
			continue
		}

		wage := payroll.ComputeAttendanceWage(w.DailySalary, attendanceByWorker[w.ID])
		totals := payroll.FoldAdjustments(adjustmentsByWorker[w.ID])
		final := payroll.FinalAmount(wage.BaseSalary, totals)

		rows = append(rows, payroll.WorkerReportRow{
			WorkerID:        w.ID,
			WorkerName:      w.Name,
			DailySalary:     w.DailySalary,
			TotalDaysWorked: wage.DaysWorked,
			BaseSalary:      wage.BaseSalary,
			Bonus:           totals.Bonus,
			Overtime:        totals.Overtime,
			Deduction:       totals.Deduction,
			Advance:         totals.Advance,
			FinalAmount:     final,
			AttendanceCount: wage.AttendanceCount,
			PresentDays:     wage.PresentDays,
			AbsentDays:      wage.AbsentDays,
		})

		summary.TotalDaysWorked += wage.DaysWorked
		summary.TotalBaseSalary = summary.TotalBaseSalary.Add(wage.BaseSalary)
		summary.TotalBonus = summary.TotalBonus.Add(totals.Bonus)
		summary.TotalOvertime = summary.TotalOvertime.Add(totals.Overtime)
		summary.TotalDeduction = summary.TotalDeduction.Add(totals.Deduction)
		summary.TotalAdvance = summary.TotalAdvance.Add(totals.Advance)
		summary.TotalFinalAmount = summary.TotalFinalAmount.Add(final)
	}
	summary.TotalWorkers = len(rows)

	return payroll.WeeklyReportResponse{
		Period: payroll.ReportPeriod{
			StartDate: formatDate(req.StartDate),
			EndDate:   formatDate(req.EndDate),
			TotalDays: validator.DaysInclusive(req.StartDate, req.EndDate),
		},
		Summary: summary,
		Workers: rows,
	}, nil
}
