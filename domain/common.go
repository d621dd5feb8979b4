package domain

import "strings"

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageSuccessPing          = "pong"

	ErrNotLoggedIn      = NewError(CodeUnauthenticated, "you need to be logged in to access this resource")
	ErrRoleNotAllowed   = NewError(CodeForbidden, "you can't access this resource")
	ErrNotResourceOwner = NewError(CodeForbidden, "you don't have the permission to modify this resource")

	ErrTokenInvalid   = NewError(CodeUnauthenticated, "token signature is invalid")
	ErrTokenExpired   = NewError(CodeUnauthenticated, "token has expired")
	ErrTokenMalformed = NewError(CodeUnauthenticated, "token is malformed")
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

// trimPtr trims the value behind p and drops it when nothing is left.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
