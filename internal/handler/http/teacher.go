package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeacherHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type teacherHandlerImpl struct {
	teacherService teacher.TeacherService
}

func NewTeacherHandler(teacherService teacher.TeacherService) TeacherHandler {
	return &teacherHandlerImpl{teacherService: teacherService}
}

// Create implements TeacherHandler.
func (h *teacherHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req teacher.CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.teacherService.CreateTeacher(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Teacher created", result)
}

// Get implements TeacherHandler.
func (h *teacherHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.teacherService.GetTeacher(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TeacherHandler.
func (h *teacherHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.teacherService.ListTeachers(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements TeacherHandler.
func (h *teacherHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req teacher.UpdateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.teacherService.UpdateTeacher(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements TeacherHandler.
func (h *teacherHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teacherService.DeleteTeacher(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher deleted", nil)
}
