package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListForMonth(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GeneratePayrolls(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payrolls generated", result)
}

// ListForMonth implements PayrollHandler.
func (h *payrollHandlerImpl) ListForMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "Query parameter 'month' must be YYYY-MM", nil)
		return
	}

	result, err := h.payrollService.ListForMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
