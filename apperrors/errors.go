package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kind is the stable category an application error is surfaced under.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindForbidden
	KindUnauthorized
	KindBadRequest
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error     { return New(KindNotFound, format, args...) }
func Validation(format string, args ...any) *Error   { return New(KindValidation, format, args...) }
func Conflict(format string, args ...any) *Error     { return New(KindConflict, format, args...) }
func Forbidden(format string, args ...any) *Error    { return New(KindForbidden, format, args...) }
func Unauthorized(format string, args ...any) *Error { return New(KindUnauthorized, format, args...) }
func BadRequest(format string, args ...any) *Error   { return New(KindBadRequest, format, args...) }

// Per-entity not-found helpers.
func CourseNotFound(id uuid.UUID) *Error   { return NotFound("Course: '%s' was not found.", id) }
func ModuleNotFound(id uuid.UUID) *Error   { return NotFound("Module: '%s' not found.", id) }
func QuestionNotFound(id uuid.UUID) *Error { return NotFound("Question: '%s' not found.", id) }
func ExamNotFound(id uuid.UUID) *Error     { return NotFound("Exam: '%s' not found.", id) }
func ExamResultNotFound(id uuid.UUID) *Error {
	return NotFound("ExamResult: '%s' was not found.", id)
}
func UserNotFound(id uuid.UUID) *Error { return NotFound("User: '%s' was not found.", id) }

func InvalidQuestionType(t string) *Error {
	return Validation("Question type '%s' is invalid.", t)
}

func InvalidExamGeneration(reason string) *Error {
	return Validation("Exam generation failed: %s.", reason)
}

// KindOf returns the kind of err, or 0 when err is not an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// StatusCode maps an error to the HTTP status it is surfaced with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindValidation, KindBadRequest:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
