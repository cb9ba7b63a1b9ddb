package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/morphir-ir/internal/codec"
)

// Error reports a failure of a facade operation. The underlying codec
// error, if any, is available through errors.As.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Dialect is the dialect being read or written, when known.
	Dialect codec.Dialect

	// Err is the wrapped cause.
	Err error
}

// ErrorCode categorizes facade errors.
type ErrorCode string

const (
	// ErrCodeDetectFailed indicates the input matched no supported dialect.
	ErrCodeDetectFailed ErrorCode = "DETECT_FAILED"

	// ErrCodeDecodeFailed indicates the detected dialect's decoder failed.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// ErrCodeEncodeFailed indicates serialization failed.
	ErrCodeEncodeFailed ErrorCode = "ENCODE_FAILED"

	// ErrCodeUnsupportedDialect indicates an unknown target dialect.
	ErrCodeUnsupportedDialect ErrorCode = "UNSUPPORTED_DIALECT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Dialect != "" {
		msg = fmt.Sprintf("%s (dialect=%s)", msg, e.Dialect)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Err }

// IsDetectError returns true if the error is a dialect detection failure.
// Uses errors.As to handle wrapped errors.
func IsDetectError(err error) bool {
	return hasCode(err, ErrCodeDetectFailed)
}

// IsDecodeError returns true if the error is a decode failure.
func IsDecodeError(err error) bool {
	return hasCode(err, ErrCodeDecodeFailed)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newDetectError(err error) *Error {
	return &Error{Code: ErrCodeDetectFailed, Message: "cannot detect IR dialect", Err: err}
}

func newDecodeError(d codec.Dialect, err error) *Error {
	return &Error{Code: ErrCodeDecodeFailed, Message: "decode failed", Dialect: d, Err: err}
}

func newEncodeError(d codec.Dialect, err error) *Error {
	return &Error{Code: ErrCodeEncodeFailed, Message: "encode failed", Dialect: d, Err: err}
}

func newUnsupportedDialectError(d codec.Dialect) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedDialect,
		Message: fmt.Sprintf("unsupported dialect %q", string(d)),
	}
}
