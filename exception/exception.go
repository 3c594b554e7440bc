// Package exception reports geometry misconfiguration. Every builder error is
// an *Exception; the host driver decides how to terminate on fatal ones.
package exception

import (
	"errors"
	"fmt"
)

// Severity of an exception.
type Severity int

const (
	// Fatal aborts the run.
	Fatal Severity = iota
	// Warning is reported and the run continues.
	Warning
	// JustWarning is informational.
	JustWarning
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "FatalException"
	case Warning:
		return "Warning"
	case JustWarning:
		return "JustWarning"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

var (
	// ErrInvalidConfiguration incompatible or invalid builder parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrMissingMother mother volume was not provided.
	ErrMissingMother = errors.New("missing mother volume")
	// ErrUnknownGas unsupported gas identifier.
	ErrUnknownGas = errors.New("unknown gas")
	// ErrUnknownRegion unsupported vertex generation region.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrAlreadyConstructed Construct called more than once.
	ErrAlreadyConstructed = errors.New("already constructed")
	// ErrNotConstructed operation requires Construct to run first.
	ErrNotConstructed = errors.New("not constructed")
	// ErrUnknownCommand command not registered in any messenger.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArgument command parameter that can not be parsed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange command parameter rejected by its range.
	ErrOutOfRange = errors.New("parameter out of range")
	// ErrUnknownGeometry geometry name not registered.
	ErrUnknownGeometry = errors.New("unknown geometry")
)

// Exception is a descriptive error with origin and code, mirroring the
// toolkit exception facility.
type Exception struct {
	Origin   string
	Code     string
	Severity Severity
	Message  string

	kind error
}

func (e *Exception) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Origin, e.Code, e.Message)
}

// Unwrap returns the sentinel error classifying the exception.
func (e *Exception) Unwrap() error {
	return e.kind
}

// New creates a fatal exception.
func New(origin, code string, kind error, format string, values ...interface{}) *Exception {
	return &Exception{
		Origin:   origin,
		Code:     code,
		Severity: Fatal,
		Message:  fmt.Sprintf(format, values...),
		kind:     kind,
	}
}

// NewWarning creates a non fatal exception.
func NewWarning(origin, code string, format string, values ...interface{}) *Exception {
	return &Exception{
		Origin:   origin,
		Code:     code,
		Severity: Warning,
		Message:  fmt.Sprintf(format, values...),
	}
}

// Func creates fatal exceptions for a fixed origin.
type Func = func(code string, kind error, format string, values ...interface{}) error

// NewFunc returns an exception constructor bound to origin, e.g. "[NextDemoSiPMBoard]".
func NewFunc(origin string) Func {
	return func(code string, kind error, format string, values ...interface{}) error {
		return New(origin, code, kind, format, values...)
	}
}

// IsFatal reports whether err must abort the run. Errors that are not
// exceptions are considered fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Exception
	if errors.As(err, &e) {
		return e.Severity == Fatal
	}
	return true
}
