package http

import (
	"net/http"
	"strconv"

	"github.com/edupoint/edupoint-backend-go/internal/domain/report"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Revenue(w http.ResponseWriter, r *http.Request)
	OutstandingBalances(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Revenue implements ReportHandler.
func (h *reportHandlerImpl) Revenue(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.RevenueSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OutstandingBalances implements ReportHandler.
func (h *reportHandlerImpl) OutstandingBalances(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.reportService.OutstandingBalances(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Dashboard implements ReportHandler.
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DashboardCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
