package pregex

import (
	"errors"
	"fmt"
)

// Construction errors. All of them are detected at the point of combination,
// never later: combinators either return a valid pattern or fail fast.
var (
	// ErrIncompatiblePolarity indicates an attempt to union or subtract a
	// regular class and a negated class.
	ErrIncompatiblePolarity = errors.New("regular and negated classes cannot be combined")

	// ErrEmptyClass indicates a subtraction that would leave a class with
	// no characters to match.
	ErrEmptyClass = errors.New("subtraction results in an empty class")

	// ErrInvalidRange indicates invalid quantifier or character-range
	// bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNotQuantifiable indicates an attempt to apply a repetition
	// quantifier to a zero-width assertion.
	ErrNotQuantifiable = errors.New("assertions cannot be quantified")

	// ErrUndefinedGroupReference indicates a backreference to a capturing
	// group that is not defined to its left in the final expression.
	ErrUndefinedGroupReference = errors.New("reference to undefined capturing group")

	// ErrInvalidGroupName indicates a capturing-group name that is not an
	// alphanumeric sequence starting with a non-digit.
	ErrInvalidGroupName = errors.New("invalid capturing group name")

	// ErrEmptyNegativeAssertion indicates that the empty pattern was
	// provided as a negative lookaround probe.
	ErrEmptyNegativeAssertion = errors.New("empty pattern cannot be a negative assertion")

	// ErrInvalidArgumentValue indicates an out-of-domain argument, such as
	// a negative replacement count.
	ErrInvalidArgumentValue = errors.New("invalid argument value")
)

// CompileError wraps a rejection of the generated pattern text by the
// matching engine. If construction invariants held, this should be
// unreachable; it is always surfaced, never recovered.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %q rejected by engine: %v", e.Pattern, e.Err)
}

// Unwrap returns the engine diagnostic.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ScanError wraps a failure to read a source file prior to scanning.
type ScanError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read error.
func (e *ScanError) Unwrap() error {
	return e.Err
}
