package types

import "fmt"

// InputError reports an input value outside the range accepted by the form.
type InputError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s=%g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}
