package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is a scalar magnitude with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New returns the quantity v u.
func New(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// Seconds is shorthand for New(v, Second).
func Seconds(v float64) Quantity { return New(v, Second) }

// Milliseconds is shorthand for New(v, Millisecond).
func Milliseconds(v float64) Quantity { return New(v, Millisecond) }

// Hz is shorthand for New(v, Hertz).
func Hz(v float64) Quantity { return New(v, Hertz) }

// Rescale converts q into unit u.
func (q Quantity) Rescale(u Unit) (Quantity, error) {
	f, err := q.Unit.Factor(u)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value * f, Unit: u.norm()}, nil
}

// Simplified converts q into SI base units.
func (q Quantity) Simplified() Quantity {
	u := q.Unit.norm()
	return Quantity{Value: q.Value * u.scale, Unit: base(u.dim)}
}

// Mul returns q*r.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{Value: q.Value * r.Value, Unit: q.Unit.Mul(r.Unit)}
}

// Div returns q/r.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{Value: q.Value / r.Value, Unit: q.Unit.Div(r.Unit)}
}

// Inverse returns 1/q.
func (q Quantity) Inverse() Quantity {
	return Quantity{Value: 1 / q.Value, Unit: q.Unit.Inverse()}
}

// Scale returns q multiplied by the dimensionless factor f.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// Cmp compares q with r after rescaling r into q's unit and returns -1, 0
// or +1.
func (q Quantity) Cmp(r Quantity) (int, error) {
	rr, err := r.Rescale(q.Unit)
	if err != nil {
		return 0, err
	}
	switch {
	case q.Value < rr.Value:
		return -1, nil
	case q.Value > rr.Value:
		return 1, nil
	default:
		return 0, nil
	}
}

// IsFinite reports whether the magnitude is neither NaN nor infinite.
func (q Quantity) IsFinite() bool {
	return !math.IsNaN(q.Value) && !math.IsInf(q.Value, 0)
}

// String formats q as "<value> <unit>", omitting the unit when q is
// dimensionless.
func (q Quantity) String() string {
	u := q.Unit.norm()
	if u == Dimensionless {
		return strconv.FormatFloat(q.Value, 'g', -1, 64)
	}
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + u.name
}

// ParseQuantity parses strings such as "10ms", "1 kHz", "inf s" or "0.5".
// The longest numeric prefix is the magnitude, the remainder the unit.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			continue
		}
		u, err := ParseUnit(s[i:])
		if err != nil {
			return Quantity{}, err
		}
		return New(v, u), nil
	}
	return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
}
