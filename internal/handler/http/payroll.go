package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
	"github.com/techmire/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GenerateAll(w http.ResponseWriter, r *http.Request)
	GenerateOne(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateHours(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GenerateAll implements PayrollHandler.
func (h *PayrollHandlerImpl) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var generateReq payroll.GeneratePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("GenerateAll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GenerateAll(r.Context(), generateReq)
	if err != nil {
		slog.Error("GenerateAll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll batch generated",
		"month", generateReq.Month,
		"generated", len(result.Results),
		"skipped", len(result.Issues),
	)
	response.Success(w, result)
}

// GenerateOne implements PayrollHandler.
func (h *PayrollHandlerImpl) GenerateOne(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var generateReq payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("GenerateOne decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GenerateOne(r.Context(), employeeID, generateReq)
	if err != nil {
		slog.Error("GenerateOne service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated", "employee_id", employeeID, "month", generateReq.Month)
	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.payrollService.List(r.Context())
	if err != nil {
		slog.Error("List payrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// UpdateHours implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateHours(w http.ResponseWriter, r *http.Request) {
	var updateReq payroll.UpdateHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateHours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	record, err := h.payrollService.UpdateHours(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateHours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll hours updated", "id", updateReq.ID, "total_working_hours", updateReq.TotalWorkingHours)
	response.SuccessWithMessage(w, "Payroll updated", record)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll deleted", "id", id)
	response.SuccessWithMessage(w, "Payroll deleted", nil)
}

// DeleteAll implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteAll(r.Context()); err != nil {
		slog.Error("DeleteAll payrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("All payrolls deleted")
	response.SuccessWithMessage(w, "All payrolls deleted", nil)
}
