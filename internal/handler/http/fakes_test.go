package http

import (
	"context"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
)

type fakeWorkerService struct {
	createFn func(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error)
	listFn   func(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkerResponse, error)
	getFn    func(ctx context.Context, id string) (worker.WorkerResponse, error)
}

func (f *fakeWorkerService) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return worker.WorkerResponse{}, nil
}

func (f *fakeWorkerService) List(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkerResponse, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return worker.ListWorkerResponse{}, nil
}

func (f *fakeWorkerService) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return worker.WorkerResponse{}, nil
}

func (f *fakeWorkerService) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	return worker.WorkerResponse{ID: req.ID}, nil
}

func (f *fakeWorkerService) SoftDelete(ctx context.Context, id string) (worker.WorkerResponse, error) {
	return worker.WorkerResponse{ID: id, IsDeleted: true}, nil
}

func (f *fakeWorkerService) HardDelete(ctx context.Context, id string) (worker.WorkerResponse, error) {
	return worker.WorkerResponse{ID: id}, nil
}

type fakeAttendanceService struct {
	createFn     func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	listFn       func(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error)
	listByDateFn func(ctx context.Context, date string) ([]attendance.AttendanceResponse, error)
}

func (f *fakeAttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) BulkUpsert(ctx context.Context, req attendance.BulkUpsertAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return attendance.ListAttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	if f.listByDateFn != nil {
		return f.listByDateFn(ctx, date)
	}
	return []attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceService) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: req.ID}, nil
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: id}, nil
}

type fakeWeeklySummaryService struct {
	createFn func(ctx context.Context, req payroll.CreateWeeklySummariesRequest) (payroll.CreateWeeklySummariesResponse, error)
	reportFn func(ctx context.Context, req payroll.WeeklyReportRequest) (payroll.WeeklyReportResponse, error)
	updateFn func(ctx context.Context, req payroll.UpdateWeeklySummaryRequest) (payroll.WeeklySummaryResponse, error)
}

func (f *fakeWeeklySummaryService) CreateWeeklySummaries(ctx context.Context, req payroll.CreateWeeklySummariesRequest) (payroll.CreateWeeklySummariesResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return payroll.CreateWeeklySummariesResponse{}, nil
}

func (f *fakeWeeklySummaryService) GenerateWeeklyReport(ctx context.Context, req payroll.WeeklyReportRequest) (payroll.WeeklyReportResponse, error) {
	if f.reportFn != nil {
		return f.reportFn(ctx, req)
	}
	return payroll.WeeklyReportResponse{}, nil
}

func (f *fakeWeeklySummaryService) List(ctx context.Context, filter payroll.WeeklySummaryFilter) (payroll.ListWeeklySummaryResponse, error) {
	return payroll.ListWeeklySummaryResponse{}, nil
}

func (f *fakeWeeklySummaryService) Get(ctx context.Context, id string) (payroll.WeeklySummaryResponse, error) {
	return payroll.WeeklySummaryResponse{}, payroll.ErrWeeklySummaryNotFound
}

func (f *fakeWeeklySummaryService) Update(ctx context.Context, req payroll.UpdateWeeklySummaryRequest) (payroll.WeeklySummaryResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}
	return payroll.WeeklySummaryResponse{}, nil
}

func (f *fakeWeeklySummaryService) Delete(ctx context.Context, id string) (payroll.WeeklySummaryResponse, error) {
	return payroll.WeeklySummaryResponse{ID: id}, nil
}

type fakeSalaryAdjustmentService struct {
	createFn func(ctx context.Context, req payroll.CreateSalaryAdjustmentRequest) (payroll.SalaryAdjustmentResponse, error)
}

func (f *fakeSalaryAdjustmentService) Create(ctx context.Context, req payroll.CreateSalaryAdjustmentRequest) (payroll.SalaryAdjustmentResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return payroll.SalaryAdjustmentResponse{}, nil
}

func (f *fakeSalaryAdjustmentService) List(ctx context.Context, filter payroll.SalaryAdjustmentFilter) (payroll.ListSalaryAdjustmentResponse, error) {
	return payroll.ListSalaryAdjustmentResponse{}, nil
}

func (f *fakeSalaryAdjustmentService) Get(ctx context.Context, id string) (payroll.SalaryAdjustmentResponse, error) {
	return payroll.SalaryAdjustmentResponse{}, payroll.ErrSalaryAdjustmentNotFound
}

func (f *fakeSalaryAdjustmentService) Update(ctx context.Context, req payroll.UpdateSalaryAdjustmentRequest) (payroll.SalaryAdjustmentResponse, error) {
	return payroll.SalaryAdjustmentResponse{ID: req.ID}, nil
}

func (f *fakeSalaryAdjustmentService) Delete(ctx context.Context, id string) (payroll.SalaryAdjustmentResponse, error) {
	return payroll.SalaryAdjustmentResponse{ID: id}, nil
}
