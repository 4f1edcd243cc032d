package services

import "errors"

// ErrorKind classifies service failures for the HTTP edge.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindServiceUnavailable
)

// User-facing rejection messages.
const (
	MsgSensitiveContent   = "content contains sensitive words"
	MsgDishNotFound       = "dish does not exist"
	MsgDishNotInShop      = "dish does not belong to shop"
	MsgShopNotFound       = "shop does not exist"
	MsgInvalidCredentials = "invalid email or password"
)

// Error is returned by every service method. Only Validation, NotFound and
// Unauthorized messages are meant for callers.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// Public reports whether err carries a message that may be shown to callers.
func Public(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindNotFound, KindUnauthorized:
		return true
	}
	return false
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func unavailable(msg string, err error) error {
	return &Error{Kind: KindServiceUnavailable, Message: msg, Err: err}
}

func internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
