package bufwav

import (
	"errors"
	"fmt"
	"log/slog"
)

// Code classifies the outcome of a decode or encode operation.
type Code int

const (
	// OK is the code of a nil error.
	OK Code = iota
	// IOError means a file or stream could not be opened, read, sought or written.
	IOError
	// FormatError means the RIFF/WAVE content is structurally invalid or
	// internally inconsistent, or an output request is invalid.
	FormatError
	// Unsupported means the content is well formed but uses a format/bit depth
	// combination this package does not handle.
	Unsupported
	// WeirdConfig means the buffer's channel count or sample rate cannot be
	// represented in a WAVE header.
	WeirdConfig
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case IOError:
		return "io error"
	case FormatError:
		return "format error"
	case Unsupported:
		return "unsupported"
	case WeirdConfig:
		return "weird config"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

var (
	// ErrIO matches every error with the IOError code.
	ErrIO = errors.New("wav i/o error")
	// ErrFormat matches every error with the FormatError code.
	ErrFormat = errors.New("invalid wav format")
	// ErrUnsupported matches every error with the Unsupported code.
	ErrUnsupported = errors.New("unsupported wav format")
	// ErrWeirdConfig matches every error with the WeirdConfig code.
	ErrWeirdConfig = errors.New("unrepresentable wav config")
)

// Error is the error type returned by Decoder and Encoder.
type Error struct {
	Code   Code
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func newError(code Code, reason string) *Error {
	return &Error{Code: code, Reason: reason}
}

func wrapError(code Code, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Reason, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// Unwrap exposes both the sentinel for the error code and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel := e.Code.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

func (c Code) sentinel() error {
	switch c {
	case IOError:
		return ErrIO
	case FormatError:
		return ErrFormat
	case Unsupported:
		return ErrUnsupported
	case WeirdConfig:
		return ErrWeirdConfig
	default:
		return nil
	}
}

// CodeOf returns the Code carried by err. A nil error is OK and an error
// that did not come from this package is reported as IOError.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}

	var wavErr *Error
	if errors.As(err, &wavErr) {
		return wavErr.Code
	}

	return IOError
}

// Warn logs a non-nil err and returns it unchanged, so it can wrap a call:
//
//	buf, err := bufwav.ReadFile(path)
//	if bufwav.Warn(err) != nil {
//		return
//	}
func Warn(err error) error {
	if err == nil {
		return nil
	}

	reason := err.Error()

	var wavErr *Error
	if errors.As(err, &wavErr) {
		reason = wavErr.Reason
	}

	slog.Warn("WAV error", "code", CodeOf(err).String(), "reason", reason)

	return err
}
