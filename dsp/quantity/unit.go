package quantity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Errors returned by unit conversions and parsing.
var (
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")
	ErrUnknownUnit       = errors.New("quantity: unknown unit")
	ErrInvalidQuantity   = errors.New("quantity: invalid quantity")
)

// Unit is a power of the time dimension together with a scale to SI.
// The zero value behaves like Dimensionless.
type Unit struct {
	name  string
	dim   int
	scale float64
}

// Predefined units.
var (
	Dimensionless = Unit{name: "dimensionless", dim: 0, scale: 1}
	Second        = Unit{name: "s", dim: 1, scale: 1}
	Millisecond   = Unit{name: "ms", dim: 1, scale: 1e-3}
	Microsecond   = Unit{name: "us", dim: 1, scale: 1e-6}
	Minute        = Unit{name: "min", dim: 1, scale: 60}
	Hertz         = Unit{name: "Hz", dim: -1, scale: 1}
	Kilohertz     = Unit{name: "kHz", dim: -1, scale: 1e3}
	Megahertz     = Unit{name: "MHz", dim: -1, scale: 1e6}
)

var named = []Unit{
	Dimensionless, Second, Millisecond, Microsecond, Minute,
	Hertz, Kilohertz, Megahertz,
}

var aliases = map[string]Unit{
	"":    Dimensionless,
	"1":   Dimensionless,
	"sec": Second,
	"µs":  Microsecond,
	"hz":  Hertz,
	"khz": Kilohertz,
	"mhz": Megahertz,
}

// ParseUnit returns the predefined unit with the given name.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	for _, u := range named {
		if u.name == s {
			return u, nil
		}
	}
	if u, ok := aliases[strings.ToLower(s)]; ok {
		return u, nil
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

func (u Unit) norm() Unit {
	if u.scale == 0 {
		return Dimensionless
	}
	return u
}

// Name returns the unit symbol.
func (u Unit) Name() string { return u.norm().name }

// Dim returns the exponent of the time dimension.
func (u Unit) Dim() int { return u.norm().dim }

// Scale returns the factor converting one of u into SI base units.
func (u Unit) Scale() float64 { return u.norm().scale }

// String implements fmt.Stringer.
func (u Unit) String() string { return u.Name() }

// IsDimensionless reports whether u has no time dimension.
func (u Unit) IsDimensionless() bool { return u.Dim() == 0 }

// Compatible reports whether values in u can be rescaled into v.
func (u Unit) Compatible(v Unit) bool { return u.Dim() == v.Dim() }

// Equal reports whether u and v denote the same unit, regardless of name.
func (u Unit) Equal(v Unit) bool {
	u, v = u.norm(), v.norm()
	return u.dim == v.dim && sameScale(u.scale, v.scale)
}

// Factor returns the multiplier converting magnitudes in u into magnitudes
// in v.
func (u Unit) Factor(v Unit) (float64, error) {
	u, v = u.norm(), v.norm()
	if u.dim != v.dim {
		return 0, fmt.Errorf("%w: %s and %s", ErrIncompatibleUnits, u.name, v.name)
	}
	if u == v {
		return 1, nil
	}
	return u.scale / v.scale, nil
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit {
	u = u.norm()
	if u == Dimensionless {
		return u
	}
	return canonical(-u.dim, 1/u.scale, "1/"+u.name)
}

// Mul returns the product unit u*v.
func (u Unit) Mul(v Unit) Unit {
	u, v = u.norm(), v.norm()
	switch {
	case u == Dimensionless:
		return v
	case v == Dimensionless:
		return u
	}
	return canonical(u.dim+v.dim, u.scale*v.scale, u.name+"*"+v.name)
}

// Div returns the quotient unit u/v.
func (u Unit) Div(v Unit) Unit {
	u, v = u.norm(), v.norm()
	if v == Dimensionless {
		return u
	}
	if u == Dimensionless {
		return v.Inverse()
	}
	return canonical(u.dim-v.dim, u.scale/v.scale, u.name+"/"+v.name)
}

// base returns the SI unit for the given time exponent.
func base(dim int) Unit {
	return canonical(dim, 1, fmt.Sprintf("s^%d", dim))
}

// canonical returns the predefined unit matching dim and scale, or a derived
// unit called name.
func canonical(dim int, scale float64, name string) Unit {
	for _, n := range named {
		if n.dim == dim && sameScale(n.scale, scale) {
			return n
		}
	}
	return Unit{name: name, dim: dim, scale: scale}
}

func sameScale(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
