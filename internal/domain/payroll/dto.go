package payroll

import (
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== WEEKLY SUMMARY DTOs ==========

type CreateWeeklySummariesRequest struct {
	WeekStartDate string `json:"weekStartDate"`
	WeekEndDate   string `json:"weekEndDate"`
	IsPaid        *bool  `json:"isPaid,omitempty"`

	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

// Validate only checks that both dates parse; the range order is not enforced
// for persisted summaries.
func (r *CreateWeeklySummariesRequest) Validate() error {
	var errs validator.ValidationErrors

	r.StartDate = validator.RequireDate(&errs, "weekStartDate", r.WeekStartDate)
	r.EndDate = validator.RequireDate(&errs, "weekEndDate", r.WeekEndDate)

	return errs.Err()
}

type CreateWeeklySummariesResponse struct {
	Message   string                  `json:"message"`
	Count     int                     `json:"count"`
	Summaries []WeeklySummaryResponse `json:"summaries"`
}

type UpdateWeeklySummaryRequest struct {
	ID     string `json:"-"`
	IsPaid *bool  `json:"isPaid,omitempty"`
}

type WeeklySummaryFilter struct {
	SearchTerm *string `json:"searchTerm,omitempty"` // worker name
	WorkerID   *string `json:"workerId,omitempty"`
	IsPaid     *bool   `json:"isPaid,omitempty"`

	pagination.Params
}

var weeklySummarySortFields = []string{"week_start_date", "created_at", "total_salary", "worker_name"}

func (f *WeeklySummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.Merge(f.Params.Normalize(weeklySummarySortFields, "week_start_date"))
	if f.WorkerID != nil && !validator.IsValidUUID(*f.WorkerID) {
		errs.Add("workerId", "workerId must be a valid id")
	}

	return errs.Err()
}

type WeeklySummaryResponse struct {
	ID              string                     `json:"id"`
	WorkerID        string                     `json:"workerId"`
	WeekStartDate   string                     `json:"weekStartDate"`
	WeekEndDate     string                     `json:"weekEndDate"`
	TotalDaysWorked int                        `json:"totalDaysWorked"`
	TotalSalary     decimal.Decimal            `json:"totalSalary"`
	IsPaid          bool                       `json:"isPaid"`
	PaidAt          *string                    `json:"paidAt,omitempty"`
	Worker          *worker.WorkerResponse     `json:"worker,omitempty"`
	Adjustments     []SalaryAdjustmentResponse `json:"adjustments"`
	CreatedAt       string                     `json:"createdAt"`
	UpdatedAt       string                     `json:"updatedAt"`
}

type ListWeeklySummaryResponse struct {
	Meta pagination.Meta         `json:"meta"`
	Data []WeeklySummaryResponse `json:"data"`
}

// ========== SALARY ADJUSTMENT DTOs ==========

type CreateSalaryAdjustmentRequest struct {
	WeeklySummaryID string          `json:"weeklySummaryId"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          *string         `json:"reason,omitempty"`
}

func (r *CreateSalaryAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WeeklySummaryID) {
		errs.Add("weeklySummaryId", "weeklySummaryId must be a valid id")
	}
	if !AdjustmentType(r.Type).Valid() {
		errs.Add("type", "type must be one of: BONUS, OVERTIME, DEDUCTION, ADVANCE")
	}
	if !validator.IsNonNegative(r.Amount) {
		errs.Add("amount", "amount must not be negative")
	}

	return errs.Err()
}

type UpdateSalaryAdjustmentRequest struct {
	ID     string           `json:"-"`
	Type   *string          `json:"type,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason *string          `json:"reason,omitempty"`
}

func (r *UpdateSalaryAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !AdjustmentType(*r.Type).Valid() {
		errs.Add("type", "type must be one of: BONUS, OVERTIME, DEDUCTION, ADVANCE")
	}
	if r.Amount != nil && !validator.IsNonNegative(*r.Amount) {
		errs.Add("amount", "amount must not be negative")
	}

	return errs.Err()
}

type SalaryAdjustmentFilter struct {
	WeeklySummaryID *string `json:"weeklySummaryId,omitempty"`
	Type            *string `json:"type,omitempty"`
	SearchTerm      *string `json:"searchTerm,omitempty"` // reason

	pagination.Params
}

var adjustmentSortFields = []string{"created_at", "amount", "type"}

func (f *SalaryAdjustmentFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.Merge(f.Params.Normalize(adjustmentSortFields, "created_at"))
	if f.WeeklySummaryID != nil && !validator.IsValidUUID(*f.WeeklySummaryID) {
		errs.Add("weeklySummaryId", "weeklySummaryId must be a valid id")
	}
	if f.Type != nil && !AdjustmentType(*f.Type).Valid() {
		errs.Add("type", "type must be one of: BONUS, OVERTIME, DEDUCTION, ADVANCE")
	}

	return errs.Err()
}

type SalaryAdjustmentResponse struct {
	ID              string          `json:"id"`
	WeeklySummaryID string          `json:"weeklySummaryId"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          *string         `json:"reason,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type ListSalaryAdjustmentResponse struct {
	Meta pagination.Meta            `json:"meta"`
	Data []SalaryAdjustmentResponse `json:"data"`
}

// ========== REPORT DTOs ==========

type WeeklyReportRequest struct {
	WeekStartDate string `json:"weekStartDate"`
	WeekEndDate   string `json:"weekEndDate"`

	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *WeeklyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	r.StartDate = validator.RequireDate(&errs, "weekStartDate", r.WeekStartDate)
	r.EndDate = validator.RequireDate(&errs, "weekEndDate", r.WeekEndDate)
	if len(errs) == 0 && r.StartDate.After(r.EndDate) {
		errs.Add("weekStartDate", "weekStartDate must not be after weekEndDate")
	}

	return errs.Err()
}

type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TotalDays int    `json:"totalDays"`
}

type WorkerReportRow struct {
	WorkerID        string          `json:"workerId"`
	WorkerName      string          `json:"workerName"`
	DailySalary     decimal.Decimal `json:"dailySalary"`
	TotalDaysWorked int             `json:"totalDaysWorked"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	Bonus           decimal.Decimal `json:"bonus"`
	Overtime        decimal.Decimal `json:"overtime"`
	Deduction       decimal.Decimal `json:"deduction"`
	Advance         decimal.Decimal `json:"advance"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	AttendanceCount int             `json:"attendanceCount"`
	PresentDays     int             `json:"presentDays"`
	AbsentDays      int             `json:"absentDays"`
}

type ReportSummary struct {
	TotalWorkers     int             `json:"totalWorkers"`
	TotalDaysWorked  int             `json:"totalDaysWorked"`
	TotalBaseSalary  decimal.Decimal `json:"totalBaseSalary"`
	TotalBonus       decimal.Decimal `json:"totalBonus"`
	TotalOvertime    decimal.Decimal `json:"totalOvertime"`
	TotalDeduction   decimal.Decimal `json:"totalDeduction"`
	TotalAdvance     decimal.Decimal `json:"totalAdvance"`
	TotalFinalAmount decimal.Decimal `json:"totalFinalAmount"`
}

type WeeklyReportResponse struct {
	Period  ReportPeriod      `json:"period"`
	Summary ReportSummary     `json:"summary"`
	Workers []WorkerReportRow `json:"workers"`
}

// ========== MAPPERS ==========

func ToSummaryResponse(s WeeklySummary) WeeklySummaryResponse {
	var paidAt *string
	if s.PaidAt != nil {
		str := s.PaidAt.Format(time.RFC3339)
		paidAt = &str
	}

	var w *worker.WorkerResponse
	if s.Worker != nil {
		resp := worker.ToResponse(*s.Worker)
		w = &resp
	}

	return WeeklySummaryResponse{
		ID:              s.ID,
		WorkerID:        s.WorkerID,
		WeekStartDate:   s.WeekStartDate.Format(validator.DateLayout),
		WeekEndDate:     s.WeekEndDate.Format(validator.DateLayout),
		TotalDaysWorked: s.TotalDaysWorked,
		TotalSalary:     s.TotalSalary,
		IsPaid:          s.IsPaid,
		PaidAt:          paidAt,
		Worker:          w,
		Adjustments:     ToAdjustmentResponses(s.Adjustments),
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSummaryResponses(summaries []WeeklySummary) []WeeklySummaryResponse {
	result := make([]WeeklySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, ToSummaryResponse(s))
	}
	return result
}

func ToAdjustmentResponse(a SalaryAdjustment) SalaryAdjustmentResponse {
	return SalaryAdjustmentResponse{
		ID:              a.ID,
		WeeklySummaryID: a.WeeklySummaryID,
		Type:            string(a.Type),
		Amount:          a.Amount,
		Reason:          a.Reason,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAdjustmentResponses(adjustments []SalaryAdjustment) []SalaryAdjustmentResponse {
	result := make([]SalaryAdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		result = append(result, ToAdjustmentResponse(a))
	}
	return result
}
