package helix

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling.
var (
	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("helix: parameter out of valid bounds")

	// ErrInvalidBounds indicates a range that cannot hold any value.
	ErrInvalidBounds = errors.New("helix: invalid parameter bounds")

	// ErrUnknownField indicates a field name that is not a panel parameter.
	ErrUnknownField = errors.New("helix: unknown parameter field")
)

// FieldError wraps a bounds error with the field that caused it.
type FieldError struct {
	Field   Field
	Value   float64
	Range   Range
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s=%g not in [%g, %g]", e.Wrapped, e.Field, e.Value, e.Range.Min, e.Range.Max)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
