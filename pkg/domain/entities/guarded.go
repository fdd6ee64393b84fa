package entities

import "math"

// Guarded carries a derived metric that may be undefined because its divisor
// was zero or negative. An undefined metric always has Value == 0.
type Guarded struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	Reason  string  `json:"reason,omitempty"`
}

// DefinedValue wraps a successfully computed metric
func DefinedValue(v float64) Guarded {
	return Guarded{Value: v, Defined: true}
}

// Undefined returns the zero sentinel for a metric that could not be computed
func Undefined(reason string) Guarded {
	return Guarded{Reason: reason}
}

// Divide returns numerator/denominator, or an undefined metric when the
// denominator is not strictly positive or either the numerator or the
// quotient is not a finite number.
func Divide(numerator, denominator float64, reason string) Guarded {
	if !(denominator > 0) {
		return Undefined(reason)
	}
	if !Finite(numerator) {
		return Undefined("value is not a finite number")
	}
	q := numerator / denominator
	if !Finite(q) {
		return Undefined("value is not a finite number")
	}
	return DefinedValue(q)
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float returns the metric value, which is 0 when undefined
func (g Guarded) Float() float64 {
	return g.Value
}
