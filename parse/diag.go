package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors matching each diagnostic kind. A *Diagnostic unwraps to
// the sentinel of its kind, so errors.Is works on the error returned by Parse.
var (
	ErrMalformedSyntax   = errors.New("malformed syntax")
	ErrUnknownTypeName   = errors.New("unknown type name")
	ErrPrototypeNotFound = errors.New("prototype not found")
	ErrTypeConflict      = errors.New("type conflict")
	ErrInvalidValue      = errors.New("invalid value")
	ErrArraySizeMismatch = errors.New("array size mismatch")
)

// Severity tells whether a diagnostic makes the document invalid.
type Severity int

const (
	// SeverityWarning marks a recoverable condition; the document is still valid.
	SeverityWarning Severity = iota
	// SeverityError marks a condition that makes the result incomplete.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Kind classifies a diagnostic.
type Kind int

const (
	// KindMalformedSyntax stops the current table scope.
	KindMalformedSyntax Kind = iota
	// KindUnknownTypeName drops a field whose type has no converter.
	KindUnknownTypeName
	// KindPrototypeNotFound replaces a missing '<-' source with an empty table.
	KindPrototypeNotFound
	// KindTypeConflict drops a field that would change the type of an existing one.
	KindTypeConflict
	// KindInvalidValue drops a field whose text the converter rejected.
	KindInvalidValue
	// KindArraySizeMismatch drops an array whose length differs from its size hint.
	KindArraySizeMismatch
)

//nolint:gochecknoglobals // lookup table for Kind.
var kindInfo = map[Kind]struct {
	name string
	err  error
}{
	KindMalformedSyntax:   {"MalformedSyntax", ErrMalformedSyntax},
	KindUnknownTypeName:   {"UnknownTypeName", ErrUnknownTypeName},
	KindPrototypeNotFound: {"PrototypeNotFound", ErrPrototypeNotFound},
	KindTypeConflict:      {"TypeConflict", ErrTypeConflict},
	KindInvalidValue:      {"InvalidValue", ErrInvalidValue},
	KindArraySizeMismatch: {"ArraySizeMismatch", ErrArraySizeMismatch},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is a structured parse event.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	// Source names the document, as set with WithName.
	Source string
	Position
	// Err is the underlying cause, if any.
	Err error
}

func (d *Diagnostic) Error() string {
	src := d.Source
	if src == "" {
		src = "<input>"
	}

	return fmt.Sprintf("%s:%d:%d: %s: %s", src, d.Line, d.Column, d.Severity, d.Message)
}

// Unwrap returns the sentinel error of the diagnostic kind and the cause.
func (d *Diagnostic) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd // sentinel and cause

	if info, ok := kindInfo[d.Kind]; ok {
		errs = append(errs, info.err)
	}

	if d.Err != nil {
		errs = append(errs, d.Err)
	}

	return errs
}
