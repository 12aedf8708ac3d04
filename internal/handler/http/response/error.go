package response

import (
	"errors"
	"net/http"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/auth"
	"github.com/edupoint/edupoint-backend-go/internal/domain/billing"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	"github.com/edupoint/edupoint-backend-go/internal/domain/student"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/domain/user"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Catalog domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrStudentIDExists):
		Conflict(w, "Student ID already exists")
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, class.ErrClassNotFound):
		NotFound(w, "Class not found")
	case errors.Is(err, class.ErrStudentNotEnrolled):
		NotFound(w, "Student is not enrolled in this class")
	case errors.Is(err, class.ErrAlreadyEnrolled):
		Conflict(w, "Student is already enrolled in this class")
	case errors.Is(err, class.ErrTeacherNotAssigned):
		NotFound(w, "Teacher is not assigned to this class")
	case errors.Is(err, class.ErrTeacherAlreadySet):
		Conflict(w, "Teacher is already assigned to this class")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Billing domain errors
	case errors.Is(err, billing.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, billing.ErrInvoiceAlreadyCancelled):
		Conflict(w, "Invoice is already cancelled")
	case errors.Is(err, billing.ErrInvoiceCancelledStatus):
		Conflict(w, "Cancelled invoices cannot change status")
	case errors.Is(err, billing.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, billing.ErrInvoiceTransactionEdit):
		Conflict(w, "Invoice transactions cannot be edited directly; cancel the invoice instead")
	case errors.Is(err, billing.ErrReversalTransactionEdit):
		Conflict(w, "Cancellation reversals cannot be edited or deleted")
	case errors.Is(err, billing.ErrInvalidAmount),
		errors.Is(err, billing.ErrInvalidTransactionType),
		errors.Is(err, billing.ErrInvalidInvoiceStatus):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
