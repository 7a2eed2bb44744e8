package worker

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	DailySalary decimal.Decimal `json:"dailySalary"`
	Status      *string         `json:"status,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs.Add("name", "name is required")
	}
	if !validator.IsPositive(r.DailySalary) {
		errs.Add("dailySalary", "dailySalary must be greater than zero")
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs.Add("status", "status must be one of: ACTIVE, INACTIVE")
	}

	return errs.Err()
}

type UpdateWorkerRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	DailySalary *decimal.Decimal `json:"dailySalary,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
		if trimmed == "" {
			errs.Add("name", "name must not be empty")
		}
	}
	if r.DailySalary != nil && !validator.IsPositive(*r.DailySalary) {
		errs.Add("dailySalary", "dailySalary must be greater than zero")
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs.Add("status", "status must be one of: ACTIVE, INACTIVE")
	}

	return errs.Err()
}

type WorkerFilter struct {
	SearchTerm     *string `json:"searchTerm,omitempty"` // name or phone
	Status         *string `json:"status,omitempty"`
	IncludeDeleted bool    `json:"includeDeleted"`

	pagination.Params
}

var workerSortFields = []string{"name", "created_at", "daily_salary"}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.Merge(f.Params.Normalize(workerSortFields, "created_at"))
	if f.Status != nil && !Status(*f.Status).Valid() {
		errs.Add("status", "status must be one of: ACTIVE, INACTIVE")
	}

	return errs.Err()
}

type WorkerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	DailySalary decimal.Decimal `json:"dailySalary"`
	Status      string          `json:"status"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type ListWorkerResponse struct {
	Meta pagination.Meta  `json:"meta"`
	Data []WorkerResponse `json:"data"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:          w.ID,
		Name:        w.Name,
		Phone:       w.Phone,
		DailySalary: w.DailySalary,
		Status:      string(w.Status),
		IsDeleted:   w.IsDeleted,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}
