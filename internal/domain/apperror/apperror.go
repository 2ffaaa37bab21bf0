package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the core can produce.
// Handlers map kinds to HTTP statuses; services never pick statuses.
type Kind int

const (
	KindUnknown Kind = iota
	KindForbidden
	KindNotFound
	KindInsufficientFunds
	KindDepositLimitExceeded
	KindInvalidArgument
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindDepositLimitExceeded:
		return "deposit_limit_exceeded"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error carries a kind plus structured context (ids, amounts) instead of a
// free-form message with ad hoc code fields.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]any
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// With attaches a context field and returns the error for chaining.
func (e *Error) With(key string, value any) *Error {
	if e.Fields == nil {
		e.Fields = map[string]any{}
	}
	e.Fields[key] = value
	return e
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Forbidden(msg string) *Error            { return New(KindForbidden, msg) }
func NotFound(msg string) *Error             { return New(KindNotFound, msg) }
func InsufficientFunds(msg string) *Error    { return New(KindInsufficientFunds, msg) }
func DepositLimitExceeded(msg string) *Error { return New(KindDepositLimitExceeded, msg) }
func InvalidArgument(msg string) *Error      { return New(KindInvalidArgument, msg) }

// Internal wraps an unexpected failure (e.g. a guarded credit affecting zero
// rows, signalling a data-integrity problem rather than a user error).
func Internal(msg string, err error) *Error { return &Error{Kind: KindInternal, Msg: msg, Err: err} }

// KindOf extracts the kind from an error chain; plain errors are KindInternal
// so infrastructure failures never leak as user-facing categories.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the structured context of an error, or nil.
func FieldsOf(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// HTTPStatus maps each kind to its boundary status. The category distinction
// (forbidden / not-found / conflict / bad-input / internal) is preserved
// end-to-end; both funds and deposit-limit failures are conflicts.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInsufficientFunds, KindDepositLimitExceeded:
		return http.StatusConflict
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
