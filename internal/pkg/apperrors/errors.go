package apperrors

import "errors"

// Error kinds. Every domain error wraps exactly one of these so the HTTP
// layer can map it to a status code with errors.Is.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("forbidden")
)

// Department errors
var (
	ErrDepartmentNotFound    = wrap(ErrNotFound, "department not found")
	ErrDepartmentCodeExists  = wrap(ErrConflict, "department code already exists")
	ErrDepartmentHasStudents = wrap(ErrConflict, "department has students and cannot be deleted")
	ErrDepartmentHasCourses  = wrap(ErrConflict, "department has courses and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound     = wrap(ErrNotFound, "student not found")
	ErrStudentNumberExists = wrap(ErrConflict, "student number already exists")
	ErrStudentEmailExists  = wrap(ErrConflict, "email already exists")
)

// Address errors
var (
	ErrAddressNotFound      = wrap(ErrNotFound, "address not found")
	ErrNoPrimaryAddress     = wrap(ErrNotFound, "no primary address found for student")
	ErrAddressOwnerMismatch = wrap(ErrForbidden, "address does not belong to student")
)

// Course errors
var (
	ErrCourseNotFound       = wrap(ErrNotFound, "course not found")
	ErrCourseCodeExists     = wrap(ErrConflict, "course code already exists")
	ErrCourseHasEnrollments = wrap(ErrConflict, "course has enrollments and cannot be deleted")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = wrap(ErrNotFound, "enrollment not found")
	ErrAlreadyEnrolled    = wrap(ErrConflict, "student is already enrolled in this course")
	ErrCourseFull         = wrap(ErrConflict, "course is full, no available seats")
)

// Fee errors
var (
	ErrFeeNotFound          = wrap(ErrNotFound, "fee not found")
	ErrFeeAlreadyPaid       = wrap(ErrConflict, "fee is already fully paid")
	ErrInvalidPaymentAmount = wrap(ErrInvalidArgument, "payment amount must be greater than zero")
	ErrPaymentExceedsAmount = wrap(ErrInvalidArgument, "payment amount exceeds outstanding balance")
	ErrUnknownPaymentMethod = wrap(ErrInvalidArgument, "unknown payment method")
)

func wrap(kind error, message string) error {
	return &CustomError{Err: kind, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewInvalidArgumentError creates an invalid-argument error with a message
func NewInvalidArgumentError(message string) error {
	return &CustomError{Err: ErrInvalidArgument, Message: message}
}

// NewForbiddenError creates a forbidden error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
