package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	ListForClassDate(w http.ResponseWriter, r *http.Request)
	DeleteForDate(w http.ResponseWriter, r *http.Request)
	DeleteForMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Set implements AttendanceHandler.
func (h *attendanceHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForClassDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForClassDate(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.ListForClassDate(r.Context(), classID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteForDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteForDate(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	deleted, err := h.attendanceService.DeleteForDate(r.Context(), classID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{"deleted": deleted})
}

// DeleteForMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteForMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' is required", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Query parameter 'month' must be 1-12", nil)
		return
	}

	deleted, err := h.attendanceService.DeleteForMonth(r.Context(), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{"deleted": deleted})
}
