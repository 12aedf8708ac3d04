package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/billing"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BillingHandler interface {
	ProvisionalTuition(w http.ResponseWriter, r *http.Request)
	GenerateInvoices(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request)
	CancelInvoice(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	UpdateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
	StudentStatement(w http.ResponseWriter, r *http.Request)
	ClearAllTransactions(w http.ResponseWriter, r *http.Request)
}

type billingHandlerImpl struct {
	billingService billing.BillingService
}

func NewBillingHandler(billingService billing.BillingService) BillingHandler {
	return &billingHandlerImpl{billingService: billingService}
}

func periodFromQuery(r *http.Request) billing.PeriodRequest {
	var req billing.PeriodRequest
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	return req
}

// ProvisionalTuition implements BillingHandler.
func (h *billingHandlerImpl) ProvisionalTuition(w http.ResponseWriter, r *http.Request) {
	result, err := h.billingService.ProvisionalTuition(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateInvoices implements BillingHandler.
func (h *billingHandlerImpl) GenerateInvoices(w http.ResponseWriter, r *http.Request) {
	var req billing.PeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.billingService.GenerateInvoices(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoices generated", result)
}

// GetInvoice implements BillingHandler.
func (h *billingHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.billingService.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListInvoices implements BillingHandler.
func (h *billingHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	var filter billing.InvoiceFilter

	if studentID := r.URL.Query().Get("student_id"); studentID != "" {
		filter.StudentID = &studentID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.billingService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Invoices, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// UpdateInvoiceStatus implements BillingHandler.
func (h *billingHandlerImpl) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	var req billing.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.billingService.UpdateInvoiceStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CancelInvoice implements BillingHandler.
func (h *billingHandlerImpl) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.billingService.CancelInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice cancelled", result)
}

// RecordTransaction implements BillingHandler.
func (h *billingHandlerImpl) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req billing.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.billingService.RecordTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

// ListTransactions implements BillingHandler.
func (h *billingHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var filter billing.LedgerFilter

	if studentID := r.URL.Query().Get("student_id"); studentID != "" {
		filter.StudentID = &studentID
	}
	if txType := r.URL.Query().Get("type"); txType != "" {
		filter.Type = &txType
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		if d, err := time.Parse("2006-01-02", startDate); err == nil {
			filter.StartDate = &d
		}
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		if d, err := time.Parse("2006-01-02", endDate); err == nil {
			filter.EndDate = &d
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.billingService.ListTransactions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Transactions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// UpdateTransaction implements BillingHandler.
func (h *billingHandlerImpl) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req billing.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.billingService.UpdateTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteTransaction implements BillingHandler.
func (h *billingHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.billingService.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted", nil)
}

// StudentStatement implements BillingHandler.
func (h *billingHandlerImpl) StudentStatement(w http.ResponseWriter, r *http.Request) {
	result, err := h.billingService.StudentStatement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClearAllTransactions implements BillingHandler.
func (h *billingHandlerImpl) ClearAllTransactions(w http.ResponseWriter, r *http.Request) {
	if err := h.billingService.ClearAllTransactions(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All transactions cleared", nil)
}
