// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package properties

import (
	"errors"
	"fmt"
)

// Code is a stable numeric error code carried by domain errors so callers can
// branch on the kind of failure without inspecting messages.
type Code int

// Error codes. The values follow the iRODS error table where one exists.
const (
	CodeSuccess      Code = 0
	CodeUnknown      Code = -1
	CodeKeyNotFound  Code = -1800000
	CodeTypeMismatch Code = -1801000
	CodeFileNotFound Code = -1100000
	CodeParseError   Code = -1102000
)

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "SUCCESS"
	case CodeKeyNotFound:
		return "KEY_NOT_FOUND"
	case CodeTypeMismatch:
		return "KEY_TYPE_MISMATCH"
	case CodeFileNotFound:
		return "FILE_NOT_FOUND"
	case CodeParseError:
		return "PARSE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Error is a domain failure with a code, a human-readable message and an
// optional underlying cause.
//
// Two *Error values match under [errors.Is] when their codes are equal, so a
// detailed error such as "key [irods_host] not found" still matches
// [ErrKeyNotFound].
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors. Match with [errors.Is].
var (
	// ErrKeyNotFound is returned when a key is absent from the store.
	ErrKeyNotFound = &Error{Code: CodeKeyNotFound, Msg: "key not found"}

	// ErrTypeMismatch is returned when the stored value's type differs from
	// the type requested by the caller, or when a value outside the supported
	// set is offered to the store.
	ErrTypeMismatch = &Error{Code: CodeTypeMismatch, Msg: "type mismatch"}

	// ErrFileNotFound is returned by file locators when no environment file
	// exists at the expected location.
	ErrFileNotFound = &Error{Code: CodeFileNotFound, Msg: "file not found"}

	// ErrParse is returned by parsers for malformed environment files.
	ErrParse = &Error{Code: CodeParseError, Msg: "parse error"}
)

// NewError builds an *Error of the given code with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an *Error of the given code around cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// CodeOf reports the code carried by err. A nil error yields [CodeSuccess] and
// an error without a domain code yields [CodeUnknown].
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Status is the non-failing report of an operation's outcome: the code and
// message of the original error, or a zero code on success.
type Status struct {
	Code    Code
	Message string
}

// OK reports whether the status represents success.
func (s Status) OK() bool {
	return s.Code == CodeSuccess
}

// StatusOf converts err into a [Status], preserving its code and message.
func StatusOf(err error) Status {
	if err == nil {
		return Status{Code: CodeSuccess}
	}
	return Status{Code: CodeOf(err), Message: err.Error()}
}
