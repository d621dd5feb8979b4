package domain

import "errors"

type ErrorCode string

const (
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeDuplicateReview ErrorCode = "DUPLICATE_REVIEW"
	CodeInternal        ErrorCode = "INTERNAL"
)

// Error is the error type returned by every service. A value with an empty
// Message is a class sentinel: errors.Is matches it against any Error that
// carries the same code.
type Error struct {
	Code    ErrorCode
	Message string
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Code == e.Code
	}
	return t == e
}

// Extensions is picked up by graphql-go and rendered under "extensions".
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

func InvalidInput(message string) *Error {
	return NewError(CodeInvalidInput, message)
}

func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

var (
	ErrInvalidInput    = &Error{Code: CodeInvalidInput}
	ErrUnauthenticated = &Error{Code: CodeUnauthenticated}
	ErrForbidden       = &Error{Code: CodeForbidden}
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrDuplicate       = &Error{Code: CodeDuplicateReview}
	ErrInternal        = NewError(CodeInternal, "internal server error")
)
