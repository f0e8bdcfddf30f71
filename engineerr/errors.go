// Package engineerr defines the gravity engine's error taxonomy: a closed
// set of error kinds the core can return, each reported synchronously as
// the failing call's result (the core never panics or retries on its own
// behalf).
package engineerr

import "fmt"

// Kind identifies which invariant or lookup failed.
type Kind int

const (
	// InvalidConfig means an EngineConfig invariant was violated.
	InvalidConfig Kind = iota
	// InvalidBody means a Body attribute invariant was violated.
	InvalidBody
	// DuplicateBodyId means construction or a create-edit would yield
	// two bodies sharing an id.
	DuplicateBodyId
	// BodyNotFound means an update or delete referenced an unknown id.
	BodyNotFound
	// NumericalInstability means a body's position or velocity became
	// non-finite during or after a step.
	NumericalInstability
	// SchemaValidationFailed means a scenario or snapshot document's
	// schema version was not "1.x".
	SchemaValidationFailed
	// UnsupportedFeature is reserved for future gated features.
	UnsupportedFeature
)

var kindNames = [...]string{
	"invalid config",
	"invalid body",
	"duplicate body id",
	"body not found",
	"numerical instability",
	"schema validation failed",
	"unsupported feature",
}

// String returns the human-readable label used as the error message
// prefix, e.g. "invalid config".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown error"
	}
	return kindNames[k]
}

// Error is the concrete error type returned by every fallible core
// operation. It carries a closed Kind plus a human-readable detail.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, enabling
// errors.Is(err, engineerr.New(engineerr.BodyNotFound, "")) style checks
// without string matching.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an *Error of the given kind with a formatted detail.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel zero-detail errors, handy for errors.Is comparisons against
// a specific kind regardless of message.
var (
	ErrInvalidConfig          = &Error{Kind: InvalidConfig}
	ErrInvalidBody            = &Error{Kind: InvalidBody}
	ErrDuplicateBodyId        = &Error{Kind: DuplicateBodyId}
	ErrBodyNotFound           = &Error{Kind: BodyNotFound}
	ErrNumericalInstability   = &Error{Kind: NumericalInstability}
	ErrSchemaValidationFailed = &Error{Kind: SchemaValidationFailed}
	ErrUnsupportedFeature     = &Error{Kind: UnsupportedFeature}
)
