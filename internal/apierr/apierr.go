// Package apierr is the error taxonomy shared by the upstream client and the
// dashboard handlers. Callers inspect errors with errors.As on *Error instead
// of probing response shapes at runtime.
package apierr

import (
	"errors"
	"net/http"

	"festadmin/internal/i18n"
)

// Kind classifies a failure for the handler layer.
type Kind string

const (
	// KindAuth is a credential failure at login (bad username/password).
	KindAuth Kind = "auth"
	// KindUnauthorized is an expired or revoked token (HTTP 401).
	KindUnauthorized Kind = "unauthorized"
	// KindTransport is a network or decoding failure before any status
	// could be interpreted.
	KindTransport Kind = "transport"
	// KindValidation is a client-side validation failure, surfaced before
	// any request is issued.
	KindValidation Kind = "validation"
	// KindUpstream is any other non-2xx response passed through for the
	// caller to interpret.
	KindUpstream Kind = "upstream"
)

// Error is the tagged result of a failed upstream call.
type Error struct {
	Status  int    // HTTP status, 0 for transport failures
	Kind    Kind
	Message string // server-provided detail/message when present
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// New builds an Error, deriving the kind from the HTTP status.
func New(status int, message string) *Error {
	kind := KindUpstream
	switch status {
	case 0:
		kind = KindTransport
	case http.StatusUnauthorized:
		kind = KindUnauthorized
	}
	return &Error{Status: status, Kind: kind, Message: message}
}

// Transport wraps a network-level failure.
func Transport(err error) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindTransport, Message: msg}
}

// Validation builds a client-side validation error.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

// IsUnauthorized reports whether err is an HTTP 401 from the upstream.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}

// Normalize reduces any error to a single user-facing string: the
// server-provided message when one exists, otherwise the localized
// "unknown error" fallback. Handlers call this at the point nearest the
// user action so no raw error reaches a rendered view.
func Normalize(err error, locale string) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return i18n.T(locale, i18n.KeyUnknownError)
}

// ErrorResponse is the JSON error body of the dashboard's own API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
