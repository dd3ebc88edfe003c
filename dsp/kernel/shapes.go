package kernel

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies a kernel function.
type Shape int

const (
	// ShapeUnknown is the zero value. It implements none of the kernel
	// operations.
	ShapeUnknown Shape = iota
	ShapeCausalDecayingExp
	ShapeGaussian
	ShapeLaplacian
	ShapeRectangular
	ShapeTriangular
	// ShapeFunction marks kernels wrapping a user function, see FromFunc.
	ShapeFunction
)

// shapeInfo holds the closed forms of a built-in shape. eval receives the
// unit-stripped ratio t/size; norm and boundary work on the size magnitude
// and return magnitudes in 1/size-unit and size-unit respectively.
type shapeInfo struct {
	name      string
	aliases   []string
	symmetric bool
	eval      func(x float64) float64
	norm      func(size float64) float64
	boundary  func(size, fraction float64) float64
}

var shapes = map[Shape]shapeInfo{
	ShapeUnknown: {
		name: "unknown",
	},
	ShapeFunction: {
		name: "function",
	},
	ShapeCausalDecayingExp: {
		name:      "causal-decaying-exp",
		aliases:   []string{"exp", "causal", "exponential"},
		symmetric: false,
		eval: func(x float64) float64 {
			if x < 0 {
				return 0
			}
			return math.Exp(-x)
		},
		norm: func(size float64) float64 { return 1 / size },
		boundary: func(size, fraction float64) float64 {
			return -size * math.Log(1-fraction)
		},
	},
	ShapeGaussian: {
		name:      "gaussian",
		aliases:   []string{"gauss", "normal"},
		symmetric: true,
		eval: func(x float64) float64 {
			return math.Exp(-0.5 * x * x)
		},
		norm: func(size float64) float64 { return 1 / (math.Sqrt(2*math.Pi) * size) },
		boundary: func(size, fraction float64) float64 {
			return size * math.Sqrt2 * math.Erfinv(fraction)
		},
	},
	ShapeLaplacian: {
		name:      "laplacian",
		aliases:   []string{"laplace"},
		symmetric: true,
		eval: func(x float64) float64 {
			return math.Exp(-math.Abs(x))
		},
		norm: func(size float64) float64 { return 0.5 / size },
		boundary: func(size, fraction float64) float64 {
			return -size * math.Log(1-fraction)
		},
	},
	ShapeRectangular: {
		name:      "rectangular",
		aliases:   []string{"rect", "box", "boxcar"},
		symmetric: true,
		eval: func(x float64) float64 {
			if math.Abs(x) < 1 {
				return 1
			}
			return 0
		},
		norm:     func(halfWidth float64) float64 { return 0.5 / halfWidth },
		boundary: func(halfWidth, _ float64) float64 { return halfWidth },
	},
	ShapeTriangular: {
		name:      "triangular",
		aliases:   []string{"tri", "triangle"},
		symmetric: true,
		eval: func(x float64) float64 {
			return math.Max(0, 1-math.Abs(x))
		},
		norm:     func(halfWidth float64) float64 { return 1 / halfWidth },
		boundary: func(halfWidth, _ float64) float64 { return halfWidth },
	},
}

// Shapes returns the built-in closed-form shapes in declaration order.
func Shapes() []Shape {
	return []Shape{
		ShapeCausalDecayingExp,
		ShapeGaussian,
		ShapeLaplacian,
		ShapeRectangular,
		ShapeTriangular,
	}
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if info, ok := shapes[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Symmetric reports whether K(t) = K(-t) holds for the shape.
func (s Shape) Symmetric() bool {
	return shapes[s].symmetric
}

// builtin reports whether s has closed forms.
func (s Shape) builtin() bool {
	return shapes[s].eval != nil
}

// ParseShape returns the built-in shape with the given name or alias.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes() {
		info := shapes[s]
		if info.name == name {
			return s, nil
		}
		for _, a := range info.aliases {
			if a == name {
				return s, nil
			}
		}
	}
	return ShapeUnknown, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
