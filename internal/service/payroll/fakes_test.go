package payroll

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
)

// ===== fake transactor =====

type fakeTransactor struct {
	calls     int
	committed int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	f.committed++
	return nil
}

// ===== fake worker repository =====

type fakeWorkerRepository struct {
	listActiveFn func(ctx context.Context) ([]worker.Worker, error)
}

func (f *fakeWorkerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepository) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	return nil, 0, nil
}

func (f *fakeWorkerRepository) ListActive(ctx context.Context) ([]worker.Worker, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx)
	}
	return []worker.Worker{}, nil
}

func (f *fakeWorkerRepository) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	return worker.Worker{}, nil
}

func (f *fakeWorkerRepository) SoftDelete(ctx context.Context, id string) (worker.Worker, error) {
	return worker.Worker{}, nil
}

func (f *fakeWorkerRepository) Delete(ctx context.Context, id string) (worker.Worker, error) {
	return worker.Worker{}, nil
}

// ===== fake attendance repository =====

type fakeAttendanceRepository struct {
	listByWorkerAndRangeFn func(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error)
	listByRangeFn          func(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepository) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepository) ListByWorkerAndRange(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error) {
	if f.listByWorkerAndRangeFn != nil {
		return f.listByWorkerAndRangeFn(ctx, workerID, start, end)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	if f.listByRangeFn != nil {
		return f.listByRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

// ===== fake weekly summary repository =====

type fakeWeeklySummaryRepository struct {
	mu sync.Mutex

	createFn           func(ctx context.Context, s payroll.WeeklySummary) (payroll.WeeklySummary, error)
	getByIDFn          func(ctx context.Context, id string) (payroll.WeeklySummary, error)
	listFn             func(ctx context.Context, filter payroll.WeeklySummaryFilter) ([]payroll.WeeklySummary, int64, error)
	updatePaidStatusFn func(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (payroll.WeeklySummary, error)
	deleteFn           func(ctx context.Context, id string) (payroll.WeeklySummary, error)

	created []payroll.WeeklySummary
}

func (f *fakeWeeklySummaryRepository) Create(ctx context.Context, s payroll.WeeklySummary) (payroll.WeeklySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createFn != nil {
		out, err := f.createFn(ctx, s)
		if err != nil {
			return payroll.WeeklySummary{}, err
		}
		s = out
	}
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeWeeklySummaryRepository) GetByID(ctx context.Context, id string) (payroll.WeeklySummary, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return payroll.WeeklySummary{}, payroll.ErrWeeklySummaryNotFound
}

func (f *fakeWeeklySummaryRepository) List(ctx context.Context, filter payroll.WeeklySummaryFilter) ([]payroll.WeeklySummary, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakeWeeklySummaryRepository) UpdatePaidStatus(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (payroll.WeeklySummary, error) {
	if f.updatePaidStatusFn != nil {
		return f.updatePaidStatusFn(ctx, id, isPaid, paidAt)
	}
	return payroll.WeeklySummary{}, nil
}

func (f *fakeWeeklySummaryRepository) Delete(ctx context.Context, id string) (payroll.WeeklySummary, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return payroll.WeeklySummary{}, nil
}

// ===== fake salary adjustment repository =====

type fakeSalaryAdjustmentRepository struct {
	createFn                 func(ctx context.Context, a payroll.SalaryAdjustment) (payroll.SalaryAdjustment, error)
	listByWeeklySummaryIDsFn func(ctx context.Context, ids []string) ([]payroll.SalaryAdjustment, error)
	listWithinRangeFn        func(ctx context.Context, start, end time.Time) ([]payroll.SalaryAdjustment, error)

	createCalls int
}

func (f *fakeSalaryAdjustmentRepository) Create(ctx context.Context, a payroll.SalaryAdjustment) (payroll.SalaryAdjustment, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return a, nil
}

func (f *fakeSalaryAdjustmentRepository) GetByID(ctx context.Context, id string) (payroll.SalaryAdjustment, error) {
	return payroll.SalaryAdjustment{}, payroll.ErrSalaryAdjustmentNotFound
}

func (f *fakeSalaryAdjustmentRepository) List(ctx context.Context, filter payroll.SalaryAdjustmentFilter) ([]payroll.SalaryAdjustment, int64, error) {
	return nil, 0, nil
}

func (f *fakeSalaryAdjustmentRepository) Update(ctx context.Context, req payroll.UpdateSalaryAdjustmentRequest) (payroll.SalaryAdjustment, error) {
	return payroll.SalaryAdjustment{}, nil
}

func (f *fakeSalaryAdjustmentRepository) Delete(ctx context.Context, id string) (payroll.SalaryAdjustment, error) {
	return payroll.SalaryAdjustment{}, nil
}

func (f *fakeSalaryAdjustmentRepository) ListByWeeklySummaryIDs(ctx context.Context, ids []string) ([]payroll.SalaryAdjustment, error) {
	if f.listByWeeklySummaryIDsFn != nil {
		return f.listByWeeklySummaryIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeSalaryAdjustmentRepository) ListWithinRange(ctx context.Context, start, end time.Time) ([]payroll.SalaryAdjustment, error) {
	if f.listWithinRangeFn != nil {
		return f.listWithinRangeFn(ctx, start, end)
	}
	return nil, nil
}
