package http

import (
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

type SalaryAdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type salaryAdjustmentHandlerImpl struct {
	adjustmentService payroll.SalaryAdjustmentService
}

func NewSalaryAdjustmentHandler(adjustmentService payroll.SalaryAdjustmentService) SalaryAdjustmentHandler {
	return &salaryAdjustmentHandlerImpl{
		adjustmentService: adjustmentService,
	}
}

// Create implements SalaryAdjustmentHandler.
func (h *salaryAdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryAdjustmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary adjustment created successfully", result)
}

// List implements SalaryAdjustmentHandler.
func (h *salaryAdjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs validator.ValidationErrors

	filter := payroll.SalaryAdjustmentFilter{
		WeeklySummaryID: queryString(q, "weeklySummaryId"),
		Type:            queryString(q, "type"),
		SearchTerm:      queryString(q, "searchTerm"),
		Params:          pagination.FromQuery(q, &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.adjustmentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, result.Meta)
}

// Get implements SalaryAdjustmentHandler.
func (h *salaryAdjustmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.adjustmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SalaryAdjustmentHandler.
func (h *salaryAdjustmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdateSalaryAdjustmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.adjustmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary adjustment updated successfully", result)
}

// Delete implements SalaryAdjustmentHandler.
func (h *salaryAdjustmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.adjustmentService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary adjustment deleted successfully", result)
}
