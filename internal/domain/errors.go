package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrUnavailable     ErrorCode = "STORE_UNAVAILABLE"

	// Entity specific errors
	ErrCourseNotFound ErrorCode = "COURSE_NOT_FOUND"
	ErrLessonNotFound ErrorCode = "LESSON_NOT_FOUND"
	ErrQuizNotFound   ErrorCode = "QUIZ_NOT_FOUND"
	ErrUserNotFound   ErrorCode = "USER_NOT_FOUND"
	ErrEmailTaken     ErrorCode = "EMAIL_ALREADY_REGISTERED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewUnauthenticatedError(message string) *DomainError {
	return NewError(ErrUnauthenticated, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewUnavailableError wraps a store/network failure. Kept distinct from
// Internal even though both surface as HTTP 500.
func NewUnavailableError(message string, err error) *DomainError {
	return NewError(ErrUnavailable, message, err)
}

func NewCourseNotFoundError(courseID int64) *DomainError {
	return NewError(ErrCourseNotFound, fmt.Sprintf("Course not found with ID: %d", courseID), nil)
}

func NewLessonNotFoundError(lessonID int64) *DomainError {
	return NewError(ErrLessonNotFound, fmt.Sprintf("Lesson not found with ID: %d", lessonID), nil)
}

func NewQuizNotFoundError(quizID int64) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %d", quizID), nil)
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field validation failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}
