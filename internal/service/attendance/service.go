package attendance

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	tx             database.Transactor
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(tx database.Transactor, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
	}
}

func workHoursOrDefault(h *float64) float64 {
	if h == nil {
		return attendance.DefaultWorkHours
	}
	return *h
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		WorkerID:  req.WorkerID,
		Date:      req.ParsedDate,
		IsPresent: req.IsPresent,
		WorkHours: workHoursOrDefault(req.WorkHours),
		Note:      req.Note,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// BulkUpsert implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BulkUpsert(ctx context.Context, req attendance.BulkUpsertAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	saved := make([]attendance.Attendance, 0, len(req.Attendances))
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, item := range req.Attendances {
			att, err := s.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				WorkerID:  item.WorkerID,
				Date:      req.ParsedDate,
				IsPresent: item.IsPresent,
				WorkHours: workHoursOrDefault(item.WorkHours),
				Note:      item.Note,
			})
			if err != nil {
				return fmt.Errorf("worker %s: %w", item.WorkerID, err)
			}
			saved = append(saved, att)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(saved), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return attendance.ListAttendanceResponse{
		Meta: filter.Meta(total),
		Data: attendance.ToResponses(records),
	}, nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	var errs validator.ValidationErrors
	parsed := validator.RequireDate(&errs, "date", date)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(records), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(att), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	deleted, err := s.attendanceRepo.Delete(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(deleted), nil
}
