package payroll

import (
	"context"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
)

type SalaryAdjustmentServiceImpl struct {
	adjustmentRepo payroll.SalaryAdjustmentRepository
}

func NewSalaryAdjustmentService(adjustmentRepo payroll.SalaryAdjustmentRepository) payroll.SalaryAdjustmentService {
	return &SalaryAdjustmentServiceImpl{adjustmentRepo: adjustmentRepo}
}

// Create implements payroll.SalaryAdjustmentService.
// The parent summary's stored total is not touched.
func (s *SalaryAdjustmentServiceImpl) Create(ctx context.Context, req payroll.CreateSalaryAdjustmentRequest) (payroll.SalaryAdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}

	created, err := s.adjustmentRepo.Create(ctx, payroll.SalaryAdjustment{
		WeeklySummaryID: req.WeeklySummaryID,
		Type:            payroll.AdjustmentType(req.Type),
		Amount:          req.Amount,
		Reason:          req.Reason,
	})
	if err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}

	return payroll.ToAdjustmentResponse(created), nil
}

// List implements payroll.SalaryAdjustmentService.
func (s *SalaryAdjustmentServiceImpl) List(ctx context.Context, filter payroll.SalaryAdjustmentFilter) (payroll.ListSalaryAdjustmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSalaryAdjustmentResponse{}, err
	}

	adjustments, total, err := s.adjustmentRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListSalaryAdjustmentResponse{}, err
	}

	return payroll.ListSalaryAdjustmentResponse{
		Meta: filter.Meta(total),
		Data: payroll.ToAdjustmentResponses(adjustments),
	}, nil
}

// Get implements payroll.SalaryAdjustmentService.
func (s *SalaryAdjustmentServiceImpl) Get(ctx context.Context, id string) (payroll.SalaryAdjustmentResponse, error) {
	a, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}
	return payroll.ToAdjustmentResponse(a), nil
}

// Update implements payroll.SalaryAdjustmentService.
func (s *SalaryAdjustmentServiceImpl) Update(ctx context.Context, req payroll.UpdateSalaryAdjustmentRequest) (payroll.SalaryAdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}

	updated, err := s.adjustmentRepo.Update(ctx, req)
	if err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}
	return payroll.ToAdjustmentResponse(updated), nil
}

// Delete implements payroll.SalaryAdjustmentService.
func (s *SalaryAdjustmentServiceImpl) Delete(ctx context.Context, id string) (payroll.SalaryAdjustmentResponse, error) {
	deleted, err := s.adjustmentRepo.Delete(ctx, id)
	if err != nil {
		return payroll.SalaryAdjustmentResponse{}, err
	}
	return payroll.ToAdjustmentResponse(deleted), nil
}
