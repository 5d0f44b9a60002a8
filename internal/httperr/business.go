package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindNotFound
	KindRateLimited
)

// BusinessError is an expected failure the client can act on.
type BusinessError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func (e BusinessError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func Validation(field, code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Field: field, Message: message}
}

// Forbidden never says whether the target exists.
func Forbidden(code string) error {
	return BusinessError{Kind: KindAuthorization, Code: code, Message: "You do not have permission to perform this action."}
}

func Missing(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func RateLimited(code string) error {
	return BusinessError{Kind: KindRateLimited, Code: code, Message: "Too many requests, slow down."}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
