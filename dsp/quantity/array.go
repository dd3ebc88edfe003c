package quantity

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Array is a slice of magnitudes sharing one unit.
type Array struct {
	Values []float64
	Unit   Unit
}

// NewArray wraps values (without copying) in unit u.
func NewArray(values []float64, u Unit) Array {
	return Array{Values: values, Unit: u}
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.Values) }

// At returns element i as a scalar quantity.
func (a Array) At(i int) Quantity {
	return Quantity{Value: a.Values[i], Unit: a.Unit}
}

// Clone returns a deep copy of a.
func (a Array) Clone() Array {
	return Array{Values: append([]float64(nil), a.Values...), Unit: a.Unit}
}

// Rescale returns a copy of a converted into unit u.
func (a Array) Rescale(u Unit) (Array, error) {
	f, err := a.Unit.Factor(u)
	if err != nil {
		return Array{}, err
	}
	out := make([]float64, len(a.Values))
	if f == 1 {
		copy(out, a.Values)
	} else {
		vecmath.ScaleBlock(out, a.Values, f)
	}
	return Array{Values: out, Unit: u.norm()}, nil
}

// Simplified returns a copy of a converted into SI base units.
func (a Array) Simplified() Array {
	u := a.Unit.norm()
	out, _ := a.Rescale(base(u.dim))
	return out
}

// Scale returns a*q as a new array.
func (a Array) Scale(q Quantity) Array {
	out := make([]float64, len(a.Values))
	vecmath.ScaleBlock(out, a.Values, q.Value)
	return Array{Values: out, Unit: a.Unit.Mul(q.Unit)}
}

// Ratio returns the unit-stripped magnitudes of a/q. The units of a and q
// must be compatible.
func (a Array) Ratio(q Quantity) ([]float64, error) {
	f, err := a.Unit.Factor(q.Unit)
	if err != nil {
		return nil, fmt.Errorf("quantity: ratio of %s by %s: %w", a.Unit.Name(), q.Unit.Name(), err)
	}
	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v / q.Value
		if f != 1 {
			out[i] *= f
		}
	}
	return out, nil
}

// Sum returns the sum of all elements.
func (a Array) Sum() Quantity {
	return Quantity{Value: vecmath.Sum(a.Values), Unit: a.Unit}
}
