package usecase

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	// ErrorInvalidInput means the message or conversation id was rejected
	// before anything was stored.
	ErrorInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorInternal means the conversation store failed.
	ErrorInternal ErrorCode = "INTERNAL_ERROR"
)

func (c ErrorCode) summary() string {
	switch c {
	case ErrorInvalidInput:
		return "message rejected"
	case ErrorInternal:
		return "conversation unavailable"
	default:
		return string(c)
	}
}

// Error is a failed chat turn or history read. Reason is the machine-readable
// rule or dependency that failed, e.g. "empty_message" or "store_append_error".
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("chat: %s (%s)", e.Code.summary(), e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CodeOf returns the code carried by err. Errors that did not come from the
// chat service count as internal.
func CodeOf(err error) ErrorCode {
	var ucErr *Error
	if errors.As(err, &ucErr) && ucErr.Code != "" {
		return ucErr.Code
	}
	return ErrorInternal
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
