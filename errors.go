package smallargs

import (
	"github.com/pkg/errors"
)

// ErrorCode is the closed set of numeric results that every fallible
// operation can be reduced to with Code().
type ErrorCode int

const (
	Success    ErrorCode = 0
	ErrnoCode  ErrorCode = -1
	OtherCode  ErrorCode = -2
	InvalidArg ErrorCode = -3
	ParseCode  ErrorCode = -4
	NotFound   ErrorCode = -5
	AllocCode  ErrorCode = -6
)

var codeText = map[ErrorCode]string{
	Success:    "Success",
	ErrnoCode:  "Check errno",
	OtherCode:  "Unknown error",
	InvalidArg: "Invalid argument",
	ParseCode:  "Parse error",
	NotFound:   "Not found",
	AllocCode:  "Allocation failed",
}

func (c ErrorCode) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return "No valid error code"
}

// Sentinels for errors.Is.  Errors returned by this package match exactly
// one of them, except errors returned from callbacks which are passed
// through untouched.
var (
	ErrIO           = kind{code: ErrnoCode}
	ErrOther        = kind{code: OtherCode}
	ErrInvalidUsage = kind{code: InvalidArg}
	ErrParse        = kind{code: ParseCode}
	ErrNotFound     = kind{code: NotFound}
	ErrAllocation   = kind{code: AllocCode}
)

type kind struct {
	code ErrorCode
}

func (k kind) Error() string { return k.code.String() }

type kindError struct {
	kind  kind
	cause error
}

func annotate(k kind, err error) error {
	if err == nil {
		return nil
	}
	return kindError{
		kind:  k,
		cause: errors.WithStack(err),
	}
}

func (e kindError) Error() string { return e.cause.Error() }
func (e kindError) Unwrap() error { return e.cause }
func (e kindError) Cause() error  { return e.cause }
func (e kindError) Is(err error) bool {
	switch t := err.(type) {
	case kind:
		return t == e.kind
	case kindError:
		return t.kind == e.kind
	}
	return false
}

// IOError annotates an error as coming from reading an argument file.
func IOError(err error) error { return annotate(ErrIO, err) }

// ParseError annotates an error as being a malformed token.  When you
// get a parse error, you probably want to display the help text.
func ParseError(err error) error { return annotate(ErrParse, err) }

// NotFoundError annotates an error as being an unknown option name.
func NotFoundError(err error) error { return annotate(ErrNotFound, err) }

// UsageError annotates an error as being a misuse of the API itself.
func UsageError(err error) error { return annotate(ErrInvalidUsage, err) }

func allocationError(err error) error { return annotate(ErrAllocation, err) }

func IsIOError(err error) bool       { return errors.Is(err, ErrIO) }
func IsParseError(err error) bool    { return errors.Is(err, ErrParse) }
func IsNotFoundError(err error) bool { return errors.Is(err, ErrNotFound) }
func IsUsageError(err error) bool    { return errors.Is(err, ErrInvalidUsage) }

// Code reduces an error to its ErrorCode.  nil is Success.  Errors that
// were not produced by this package, for example those returned by
// callbacks, are OtherCode unless they wrap one of the sentinels.
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	for _, k := range []kind{ErrIO, ErrInvalidUsage, ErrParse, ErrNotFound, ErrAllocation} {
		if errors.Is(err, k) {
			return k.code
		}
	}
	return OtherCode
}
