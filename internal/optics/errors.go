package optics

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling.
var (
	// ErrParameterBounds indicates a parameter value is outside its slider range.
	ErrParameterBounds = errors.New("optics: parameter out of valid bounds")

	// ErrUnknownMode indicates a slit mode that is neither single nor double.
	ErrUnknownMode = errors.New("optics: unknown slit mode")

	// ErrEmptyGeometry indicates a canvas with zero or negative area.
	ErrEmptyGeometry = errors.New("optics: canvas has zero area")
)

// ParamError reports which parameter violated its range.
type ParamError struct {
	Field string
	Value float64
	Range Range
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("optics: %s=%g outside [%g, %g]", e.Field, e.Value, e.Range.Min, e.Range.Max)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
