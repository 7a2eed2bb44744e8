package payroll

import (
	"testing"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyReportRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        WeeklyReportRequest
		wantFields []string
	}{
		{"valid week", WeeklyReportRequest{WeekStartDate: "2024-03-04", WeekEndDate: "2024-03-10"}, nil},
		{"single day", WeeklyReportRequest{WeekStartDate: "2024-03-04", WeekEndDate: "2024-03-04"}, nil},
		{"missing dates", WeeklyReportRequest{}, []string{"weekStartDate", "weekEndDate"}},
		{"bad format", WeeklyReportRequest{WeekStartDate: "04/03/2024", WeekEndDate: "2024-03-10"}, []string{"weekStartDate"}},
		{"start after end", WeeklyReportRequest{WeekStartDate: "2024-03-10", WeekEndDate: "2024-03-04"}, []string{"weekStartDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.wantFields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}
}

func TestCreateWeeklySummariesRequest_AllowsReversedRange(t *testing.T) {
	req := CreateWeeklySummariesRequest{WeekStartDate: "2024-03-10", WeekEndDate: "2024-03-04"}
	require.NoError(t, req.Validate())
	assert.True(t, req.StartDate.After(req.EndDate))
}

func TestCreateSalaryAdjustmentRequest_Validate(t *testing.T) {
	req := CreateSalaryAdjustmentRequest{
		WeeklySummaryID: "not-an-id",
		Type:            "TIP",
		Amount:          dec("-1"),
	}

	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Len(t, verrs, 3)

	req = CreateSalaryAdjustmentRequest{
		WeeklySummaryID: "123e4567-e89b-12d3-a456-426614174000",
		Type:            "BONUS",
		Amount:          dec("0"),
	}
	assert.NoError(t, req.Validate())
}
