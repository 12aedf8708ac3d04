package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StudentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type studentHandlerImpl struct {
	studentService student.StudentService
}

func NewStudentHandler(studentService student.StudentService) StudentHandler {
	return &studentHandlerImpl{studentService: studentService}
}

// Create implements StudentHandler.
func (h *studentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req student.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.studentService.CreateStudent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student created", result)
}

// Get implements StudentHandler.
func (h *studentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.studentService.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements StudentHandler.
func (h *studentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter student.StudentFilter

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.Atoi(l)
	}

	result, err := h.studentService.ListStudents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Students, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// Update implements StudentHandler.
func (h *studentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req student.UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.studentService.UpdateStudent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements StudentHandler.
func (h *studentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.studentService.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student deleted", nil)
}
