package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// DefaultFanoutLimit bounds concurrent per-worker reads when no limit is configured.
const DefaultFanoutLimit = 8

type WeeklySummaryServiceImpl struct {
	tx             database.Transactor
	summaryRepo    payroll.WeeklySummaryRepository
	adjustmentRepo payroll.SalaryAdjustmentRepository
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	fanoutLimit    int
	now            func() time.Time
}

func NewWeeklySummaryService(
	tx database.Transactor,
	summaryRepo payroll.WeeklySummaryRepository,
	adjustmentRepo payroll.SalaryAdjustmentRepository,
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	fanoutLimit int,
) payroll.WeeklySummaryService {
	if fanoutLimit <= 0 {
		fanoutLimit = DefaultFanoutLimit
	}
	return &WeeklySummaryServiceImpl{
		tx:             tx,
		summaryRepo:    summaryRepo,
		adjustmentRepo: adjustmentRepo,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		fanoutLimit:    fanoutLimit,
		now:            time.Now,
	}
}

// CreateWeeklySummaries implements payroll.WeeklySummaryService.
//
// Wages are computed per worker concurrently; every row is then written in a
// single transaction, so a duplicate week for any worker leaves nothing behind.
func (s *WeeklySummaryServiceImpl) CreateWeeklySummaries(ctx context.Context, req payroll.CreateWeeklySummariesRequest) (payroll.CreateWeeklySummariesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CreateWeeklySummariesResponse{}, err
	}

	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		return payroll.CreateWeeklySummariesResponse{}, fmt.Errorf("failed to load active workers: %w", err)
	}
	if len(workers) == 0 {
		return payroll.CreateWeeklySummariesResponse{}, payroll.ErrNoActiveWorkers
	}

	isPaid := req.IsPaid != nil && *req.IsPaid
	var paidAt *time.Time
	if isPaid {
		now := s.now()
		paidAt = &now
	}

	drafts := make([]payroll.WeeklySummary, len(workers))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for i, w := range workers {
		i, w := i, w
		g.Go(func() error {
			records, err := s.attendanceRepo.ListByWorkerAndRange(gCtx, w.ID, req.StartDate, req.EndDate)
			if err != nil {
				return fmt.Errorf("failed to load attendance for worker %s: %w", w.Name, err)
			}

			wage := payroll.ComputeAttendanceWage(w.DailySalary, records)
			drafts[i] = payroll.WeeklySummary{
				WorkerID:        w.ID,
				WeekStartDate:   req.StartDate,
				WeekEndDate:     req.EndDate,
				TotalDaysWorked: wage.DaysWorked,
				TotalSalary:     wage.BaseSalary,
				IsPaid:          isPaid,
				PaidAt:          paidAt,
				Worker:          &w,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "weekly summary computation failed", "week_start", req.WeekStartDate, "week_end", req.WeekEndDate, "error", err)
		return payroll.CreateWeeklySummariesResponse{}, err
	}

	created := make([]payroll.WeeklySummary, 0, len(drafts))
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, d := range drafts {
			summary, err := s.summaryRepo.Create(txCtx, d)
			if err != nil {
				return fmt.Errorf("worker %s: %w", d.Worker.Name, err)
			}
			summary.Worker = d.Worker
			summary.Adjustments = []payroll.SalaryAdjustment{}
			created = append(created, summary)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "weekly summary batch rolled back", "week_start", req.WeekStartDate, "week_end", req.WeekEndDate, "error", err)
		return payroll.CreateWeeklySummariesResponse{}, err
	}

	slog.InfoContext(ctx, "weekly summaries created",
		"week_start", req.WeekStartDate,
		"week_end", req.WeekEndDate,
		"count", len(created),
	)

	return payroll.CreateWeeklySummariesResponse{
		Message:   fmt.Sprintf("Successfully created %d weekly summaries", len(created)),
		Count:     len(created),
		Summaries: payroll.ToSummaryResponses(created),
	}, nil
}

// List implements payroll.WeeklySummaryService.
func (s *WeeklySummaryServiceImpl) List(ctx context.Context, filter payroll.WeeklySummaryFilter) (payroll.ListWeeklySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListWeeklySummaryResponse{}, err
	}

	summaries, total, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListWeeklySummaryResponse{}, err
	}

	if err := s.attachAdjustments(ctx, summaries); err != nil {
		return payroll.ListWeeklySummaryResponse{}, err
	}

	return payroll.ListWeeklySummaryResponse{
		Meta: filter.Meta(total),
		Data: payroll.ToSummaryResponses(summaries),
	}, nil
}

// Get implements payroll.WeeklySummaryService.
func (s *WeeklySummaryServiceImpl) Get(ctx context.Context, id string) (payroll.WeeklySummaryResponse, error) {
	summary, err := s.load(ctx, id)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}
	return payroll.ToSummaryResponse(summary), nil
}

// Update implements payroll.WeeklySummaryService.
//
// paidAt is stamped only when the summary moves from unpaid to paid and is
// cleared when it moves back. A missing or unchanged isPaid leaves it alone.
func (s *WeeklySummaryServiceImpl) Update(ctx context.Context, req payroll.UpdateWeeklySummaryRequest) (payroll.WeeklySummaryResponse, error) {
	current, err := s.load(ctx, req.ID)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}

	if req.IsPaid == nil || *req.IsPaid == current.IsPaid {
		return payroll.ToSummaryResponse(current), nil
	}

	var paidAt *time.Time
	if *req.IsPaid {
		now := s.now()
		paidAt = &now
	}

	updated, err := s.summaryRepo.UpdatePaidStatus(ctx, req.ID, *req.IsPaid, paidAt)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}
	updated.Worker = current.Worker
	updated.Adjustments = current.Adjustments

	return payroll.ToSummaryResponse(updated), nil
}

// Delete implements payroll.WeeklySummaryService.
func (s *WeeklySummaryServiceImpl) Delete(ctx context.Context, id string) (payroll.WeeklySummaryResponse, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}

	deleted, err := s.summaryRepo.Delete(ctx, id)
	if err != nil {
		return payroll.WeeklySummaryResponse{}, err
	}
	deleted.Worker = current.Worker
	deleted.Adjustments = current.Adjustments

	return payroll.ToSummaryResponse(deleted), nil
}

// load fetches one summary with its worker and adjustments.
func (s *WeeklySummaryServiceImpl) load(ctx context.Context, id string) (payroll.WeeklySummary, error) {
	summary, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.WeeklySummary{}, err
	}

	summaries := []payroll.WeeklySummary{summary}
	if err := s.attachAdjustments(ctx, summaries); err != nil {
		return payroll.WeeklySummary{}, err
	}

	return summaries[0], nil
}

func (s *WeeklySummaryServiceImpl) attachAdjustments(ctx context.Context, summaries []payroll.WeeklySummary) error {
	if len(summaries) == 0 {
		return nil
	}

	ids := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		ids = append(ids, summary.ID)
	}

	adjustments, err := s.adjustmentRepo.ListByWeeklySummaryIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load salary adjustments: %w", err)
	}

	bySummary := make(map[string][]payroll.SalaryAdjustment, len(summaries))
	for _, a := range adjustments {
		bySummary[a.WeeklySummaryID] = append(bySummary[a.WeeklySummaryID], a)
	}
	for i := range summaries {
		summaries[i].Adjustments = bySummary[summaries[i].ID]
		if summaries[i].Adjustments == nil {
			summaries[i].Adjustments = []payroll.SalaryAdjustment{}
		}
	}

	return nil
}

func formatDate(t time.Time) string {
	return t.Format(validator.DateLayout)
}
