// Package mderrors defines the library's bit-stable error taxonomy.
//
// Every fallible operation in modulemd returns an error that can be
// inspected through Code, so callers can dispatch on the failure kind
// without parsing message text. Internally each Code maps to a generic
// github.com/ZanzyTHEbar/errbuilder-go classification, which is what the
// validator CLI collaborator uses to pick a process exit status.
package mderrors

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Code is a stable identifier for a class of modulemd failure. Values
// never change meaning or number across releases.
type Code string

const (
	YamlOpen              Code = "YamlOpen"
	YamlParse             Code = "YamlParse"
	YamlEmit              Code = "YamlEmit"
	UnknownDocumentType   Code = "UnknownDocumentType"
	UnknownVersion        Code = "UnknownVersion"
	VersionMismatch       Code = "VersionMismatch"
	MissingRequiredField  Code = "MissingRequiredField"
	InvalidFieldValue     Code = "InvalidFieldValue"
	UnknownKeyStrict      Code = "UnknownKeyStrict"
	MergeConflictDefaults Code = "MergeConflictDefaults"
	MergeConflictStream   Code = "MergeConflictStream"
	PriorityOutOfRange    Code = "PriorityOutOfRange"
	NothingToResolve      Code = "NothingToResolve"
)

// errbuilderCode is the generic classification each domain Code maps to,
// used only to pick a CLI exit status; the domain Code is what callers
// should actually branch on.
var errbuilderCode = map[Code]errbuilder.ErrCode{
	YamlOpen:              errbuilder.CodeNotFound,
	YamlParse:             errbuilder.CodeInvalidArgument,
	YamlEmit:              errbuilder.CodeInternal,
	UnknownDocumentType:   errbuilder.CodeInvalidArgument,
	UnknownVersion:        errbuilder.CodeInvalidArgument,
	VersionMismatch:       errbuilder.CodeInvalidArgument,
	MissingRequiredField:  errbuilder.CodeInvalidArgument,
	InvalidFieldValue:     errbuilder.CodeInvalidArgument,
	UnknownKeyStrict:      errbuilder.CodeInvalidArgument,
	MergeConflictDefaults: errbuilder.CodeFailedPrecondition,
	MergeConflictStream:   errbuilder.CodeFailedPrecondition,
	PriorityOutOfRange:    errbuilder.CodeInvalidArgument,
	NothingToResolve:      errbuilder.CodeFailedPrecondition,
}

// Error is a modulemd failure tagged with a bit-stable Code. It wraps
// the underlying errbuilder error as its cause so errors.Is/As and
// errbuilder.CodeOf keep working for generic callers.
type Error struct {
	code  Code
	msg   string
	cause error
}

// New builds an Error for code with the given message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg, cause: builderFor(code, msg, nil)}
}

// Newf builds an Error for code with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap builds an Error for code, attaching cause for context.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{code: code, msg: msg, cause: builderFor(code, msg, cause)}
}

func builderFor(code Code, msg string, cause error) error {
	built := errbuilder.New().
		WithCode(errbuilderCode[code]).
		WithMsg(msg)
	if cause != nil {
		built = built.WithCause(cause)
	}
	return built
}

func (e *Error) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

// Code returns the bit-stable failure code.
func (e *Error) Code() Code { return e.code }

// Unwrap exposes the underlying errbuilder error for errors.Is/As and
// errbuilder.CodeOf.
func (e *Error) Unwrap() error { return e.cause }

// CodeOf extracts the bit-stable Code from err, or "" if err does not
// originate from this package.
func CodeOf(err error) Code {
	var domainErr *Error
	if ok := asError(err, &domainErr); ok {
		return domainErr.code
	}
	return ""
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		unwrappable, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrappable.Unwrap()
	}
	return false
}
