package http

import (
	"encoding/json"
	"net/http"

	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClassHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Enroll(w http.ResponseWriter, r *http.Request)
	Unenroll(w http.ResponseWriter, r *http.Request)
	AssignTeacher(w http.ResponseWriter, r *http.Request)
	UnassignTeacher(w http.ResponseWriter, r *http.Request)
}

type classHandlerImpl struct {
	classService class.ClassService
}

func NewClassHandler(classService class.ClassService) ClassHandler {
	return &classHandlerImpl{classService: classService}
}

// Create implements ClassHandler.
func (h *classHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req class.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.classService.CreateClass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Class created", result)
}

// Get implements ClassHandler.
func (h *classHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.classService.GetClass(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ClassHandler.
func (h *classHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.classService.ListClasses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ClassHandler.
func (h *classHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req class.UpdateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.classService.UpdateClass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ClassHandler.
func (h *classHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.classService.DeleteClass(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Class deleted", nil)
}

// Enroll implements ClassHandler.
func (h *classHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	if err := h.classService.EnrollStudent(r.Context(), classID, studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student enrolled", nil)
}

// Unenroll implements ClassHandler.
func (h *classHandlerImpl) Unenroll(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	if err := h.classService.UnenrollStudent(r.Context(), classID, studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student unenrolled", nil)
}

// AssignTeacher implements ClassHandler.
func (h *classHandlerImpl) AssignTeacher(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	teacherID := chi.URLParam(r, "teacherID")

	if err := h.classService.AssignTeacher(r.Context(), classID, teacherID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher assigned", nil)
}

// UnassignTeacher implements ClassHandler.
func (h *classHandlerImpl) UnassignTeacher(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	teacherID := chi.URLParam(r, "teacherID")

	if err := h.classService.UnassignTeacher(r.Context(), classID, teacherID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher unassigned", nil)
}
