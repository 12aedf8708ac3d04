package class

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrStudentNotEnrolled = errors.New("student is not enrolled in this class")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this class")
	ErrTeacherNotAssigned = errors.New("teacher is not assigned to this class")
	ErrTeacherAlreadySet  = errors.New("teacher is already assigned to this class")
)
