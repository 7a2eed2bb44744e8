package http

import (
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

type WeeklySummaryHandler interface {
	CreateWeeklySummaries(w http.ResponseWriter, r *http.Request)
	GenerateReport(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type weeklySummaryHandlerImpl struct {
	summaryService payroll.WeeklySummaryService
}

func NewWeeklySummaryHandler(summaryService payroll.WeeklySummaryService) WeeklySummaryHandler {
	return &weeklySummaryHandlerImpl{
		summaryService: summaryService,
	}
}

// CreateWeeklySummaries implements WeeklySummaryHandler.
func (h *weeklySummaryHandlerImpl) CreateWeeklySummaries(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateWeeklySummariesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.summaryService.CreateWeeklySummaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// GenerateReport implements WeeklySummaryHandler. The range comes from the body.
func (h *weeklySummaryHandlerImpl) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req payroll.WeeklyReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.writeReport(w, r, req)
}

// GetReport implements WeeklySummaryHandler. The range comes from the query string.
func (h *weeklySummaryHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeReport(w, r, payroll.WeeklyReportRequest{
		WeekStartDate: q.Get("weekStartDate"),
		WeekEndDate:   q.Get("weekEndDate"),
	})
}

func (h *weeklySummaryHandlerImpl) writeReport(w http.ResponseWriter, r *http.Request, req payroll.WeeklyReportRequest) {
	result, err := h.summaryService.GenerateWeeklyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly report generated successfully", result)
}

// List implements WeeklySummaryHandler.
func (h *weeklySummaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs validator.ValidationErrors

	filter := payroll.WeeklySummaryFilter{
		SearchTerm: queryString(q, "searchTerm"),
		WorkerID:   queryString(q, "workerId"),
		IsPaid:     queryBool(q, "isPaid", &errs),
		Params:     pagination.FromQuery(q, &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.summaryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, result.Meta)
}

// Get implements WeeklySummaryHandler.
func (h *weeklySummaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.summaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WeeklySummaryHandler.
func (h *weeklySummaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdateWeeklySummaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.summaryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly summary updated successfully", result)
}

// Delete implements WeeklySummaryHandler.
func (h *weeklySummaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.summaryService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly summary deleted successfully", result)
}
