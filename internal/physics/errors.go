package physics

import (
	"errors"
	"fmt"
)

// Validation sentinels, detected before any math runs.
var (
	// ErrOutOfRange indicates a value outside its valid range.
	ErrOutOfRange = errors.New("physics: value out of valid range")

	// ErrInvalidParameter indicates a parameter that makes no sense as given.
	ErrInvalidParameter = errors.New("physics: invalid parameter")

	// ErrPhysicsViolation indicates a physical constraint violation.
	ErrPhysicsViolation = errors.New("physics: physical constraint violated")
)

// Calculation sentinels, raised during the math stage.
var (
	// ErrConvergenceFailed indicates an iterative method did not converge.
	ErrConvergenceFailed = errors.New("physics: convergence failed")

	// ErrNumericalInstability indicates the computation became unstable.
	ErrNumericalInstability = errors.New("physics: numerical instability")

	// ErrInvalidInput indicates input the math stage cannot handle.
	ErrInvalidInput = errors.New("physics: invalid input")

	// ErrModelNotApplicable indicates the model does not apply to the regime.
	ErrModelNotApplicable = errors.New("physics: model not applicable")
)

// ValidationError is a parameter-shape problem. It wraps one of the
// validation sentinels so errors.Is works at call sites. Immutable,
// descriptive, non-retryable.
type ValidationError struct {
	Err    error
	Reason string

	// Range bounds, set when Err is ErrOutOfRange.
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		return fmt.Sprintf("value %g is out of valid range [%g, %g]", e.Value, e.Min, e.Max)
	}
	if errors.Is(e.Err, ErrPhysicsViolation) {
		return fmt.Sprintf("physical constraint violated: %s", e.Reason)
	}
	return fmt.Sprintf("invalid parameter: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// OutOfRange builds a ValidationError for a value outside [min, max].
func OutOfRange(value, min, max float64) *ValidationError {
	return &ValidationError{Err: ErrOutOfRange, Value: value, Min: min, Max: max}
}

// InvalidParameter builds a ValidationError with a free-form reason.
func InvalidParameter(reason string) *ValidationError {
	return &ValidationError{Err: ErrInvalidParameter, Reason: reason}
}

// PhysicsViolation builds a ValidationError for a violated constraint.
func PhysicsViolation(reason string) *ValidationError {
	return &ValidationError{Err: ErrPhysicsViolation, Reason: reason}
}

// CalculationError is a math-stage problem. It also wraps validation
// failures so a single error channel suffices at the call site.
type CalculationError struct {
	Err        error
	Reason     string
	Iterations int

	// Validation is set when the error is a validation pass-through.
	Validation *ValidationError
}

func (e *CalculationError) Error() string {
	if e.Validation != nil {
		return fmt.Sprintf("validation error: %s", e.Validation.Error())
	}
	if errors.Is(e.Err, ErrConvergenceFailed) {
		return fmt.Sprintf("convergence failed after %d iterations", e.Iterations)
	}
	if errors.Is(e.Err, ErrNumericalInstability) {
		return fmt.Sprintf("numerical instability detected: %s", e.Reason)
	}
	if errors.Is(e.Err, ErrModelNotApplicable) {
		return fmt.Sprintf("model not applicable: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *CalculationError) Unwrap() error {
	if e.Validation != nil {
		return e.Validation
	}
	return e.Err
}

// ConvergenceFailed builds a CalculationError for a non-converging series.
func ConvergenceFailed(iterations int) *CalculationError {
	return &CalculationError{Err: ErrConvergenceFailed, Iterations: iterations}
}

// NumericalInstability builds a CalculationError for unstable math.
func NumericalInstability(reason string) *CalculationError {
	return &CalculationError{Err: ErrNumericalInstability, Reason: reason}
}

// InvalidInput builds a CalculationError for unusable input.
func InvalidInput(reason string) *CalculationError {
	return &CalculationError{Err: ErrInvalidInput, Reason: reason}
}

// ModelNotApplicable builds a CalculationError for an out-of-regime model.
func ModelNotApplicable(reason string) *CalculationError {
	return &CalculationError{Err: ErrModelNotApplicable, Reason: reason}
}

// WrapValidation lifts a ValidationError into the calculation channel.
func WrapValidation(v *ValidationError) *CalculationError {
	return &CalculationError{Validation: v}
}
