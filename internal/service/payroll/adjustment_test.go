package payroll

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryID = "123e4567-e89b-12d3-a456-426614174000"

func TestSalaryAdjustmentService_Create(t *testing.T) {
	repo := &fakeSalaryAdjustmentRepository{}
	svc := NewSalaryAdjustmentService(repo)

	resp, err := svc.Create(context.Background(), payroll.CreateSalaryAdjustmentRequest{
		WeeklySummaryID: summaryID,
		Type:            "OVERTIME",
		Amount:          dec("125.50"),
		Reason:          strPtr("Saturday shift"),
	})

	require.NoError(t, err)
	assert.Equal(t, summaryID, resp.WeeklySummaryID)
	assert.Equal(t, "OVERTIME", resp.Type)
	assert.True(t, dec("125.5").Equal(resp.Amount))
	assert.Equal(t, 1, repo.createCalls)
}

func TestSalaryAdjustmentService_Create_Invalid(t *testing.T) {
	repo := &fakeSalaryAdjustmentRepository{}
	svc := NewSalaryAdjustmentService(repo)

	_, err := svc.Create(context.Background(), payroll.CreateSalaryAdjustmentRequest{
		WeeklySummaryID: summaryID,
		Type:            "TIP",
		Amount:          dec("-5"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
	assert.Contains(t, verrs.ToMap(), "amount")
	assert.Equal(t, 0, repo.createCalls)
}

func TestSalaryAdjustmentService_Create_UnknownSummary(t *testing.T) {
	repo := &fakeSalaryAdjustmentRepository{
		createFn: func(ctx context.Context, a payroll.SalaryAdjustment) (payroll.SalaryAdjustment, error) {
			return payroll.SalaryAdjustment{}, payroll.ErrUnknownWeeklySummary
		},
	}
	svc := NewSalaryAdjustmentService(repo)

	_, err := svc.Create(context.Background(), payroll.CreateSalaryAdjustmentRequest{
		WeeklySummaryID: summaryID,
		Type:            "BONUS",
		Amount:          dec("10"),
	})

	assert.ErrorIs(t, err, payroll.ErrUnknownWeeklySummary)
}

func TestSalaryAdjustmentService_GetNotFound(t *testing.T) {
	svc := NewSalaryAdjustmentService(&fakeSalaryAdjustmentRepository{})

	_, err := svc.Get(context.Background(), summaryID)

	assert.ErrorIs(t, err, payroll.ErrSalaryAdjustmentNotFound)
}

func TestSalaryAdjustmentService_ListRejectsBadType(t *testing.T) {
	svc := NewSalaryAdjustmentService(&fakeSalaryAdjustmentRepository{})

	_, err := svc.List(context.Background(), payroll.SalaryAdjustmentFilter{Type: strPtr("SALARY")})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
}
