package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeQuizNotFound ErrorCode = "QUIZ_NOT_FOUND"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache: key not found")

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches on Code so callers can write errors.Is(err, domain.ErrQuizNotFound).
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrQuizNotFound = &DomainError{Code: CodeQuizNotFound}
	ErrInternal     = &DomainError{Code: CodeInternal}
)

func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewQuizNotFoundError(quizID int64) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz with ID %d not found", quizID), nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// ValidationError is a single field-level request problem. Loc is the path
// to the offending value, starting with "body", "path" or "query".
type ValidationError struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

func (e ValidationError) Error() string {
	parts := make([]string, len(e.Loc))
	for i, p := range e.Loc {
		parts[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, "."), e.Msg)
}

// ValidationErrors collects every problem found in one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(loc ...interface{}) ValidationError {
	return ValidationError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
}

func NewInvalidTypeError(expected string, loc ...interface{}) ValidationError {
	return ValidationError{
		Loc:  loc,
		Msg:  fmt.Sprintf("value is not a valid %s", expected),
		Type: "type_error." + expected,
	}
}

func NewInvalidFormatError(msg string, loc ...interface{}) ValidationError {
	return ValidationError{Loc: loc, Msg: msg, Type: "value_error"}
}
