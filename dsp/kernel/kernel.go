package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// Errors returned by kernel operations.
var (
	ErrNotImplemented    = errors.New("kernel: operation not implemented for this kernel")
	ErrInvalidParameters = errors.New("kernel: invalid parameters")
	ErrInvalidSize       = errors.New("kernel: size must be positive and finite")
	ErrUnknownShape      = errors.New("kernel: unknown shape")
)

// Func is a kernel function evaluating the weights at offsets t for a
// kernel of the given size.
type Func func(t quantity.Array, size quantity.Quantity) quantity.Array

// Kernel is an immutable one-dimensional weighting function. The zero value
// is an abstract kernel whose operations return ErrNotImplemented.
type Kernel struct {
	shape     Shape
	size      quantity.Quantity
	normalize bool
	fn        Func
}

// Option configures a built-in kernel.
type Option func(*config)

type config struct {
	size      quantity.Quantity
	normalize bool
}

func defaultConfig() config {
	return config{
		size:      quantity.Seconds(1),
		normalize: true,
	}
}

// WithSize sets the kernel size. Non-positive sizes are ignored.
func WithSize(size quantity.Quantity) Option {
	return func(c *config) {
		if size.Value > 0 {
			c.size = size
		}
	}
}

// WithNormalize selects whether the kernel is scaled to unit area.
func WithNormalize(normalize bool) Option {
	return func(c *config) {
		c.normalize = normalize
	}
}

func newShape(s Shape, opts []Option) Kernel {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return Kernel{shape: s, size: cfg.size, normalize: cfg.normalize}
}

// NewCausalDecayingExp returns exp(-t/τ)·Θ(t) with size τ. Defaults: 1 s,
// normalized.
func NewCausalDecayingExp(opts ...Option) Kernel {
	return newShape(ShapeCausalDecayingExp, opts)
}

// NewGaussian returns exp(-t²/(2σ²)) with size σ. Defaults: 1 s, normalized.
func NewGaussian(opts ...Option) Kernel {
	return newShape(ShapeGaussian, opts)
}

// NewLaplacian returns exp(-|t/τ|) with size τ. Defaults: 1 s, normalized.
func NewLaplacian(opts ...Option) Kernel {
	return newShape(ShapeLaplacian, opts)
}

// NewRectangular returns a box of half width equal to the size. Defaults:
// 1 s, normalized.
func NewRectangular(opts ...Option) Kernel {
	return newShape(ShapeRectangular, opts)
}

// NewTriangular returns a triangle of half width equal to the size.
// Defaults: 1 s, normalized.
func NewTriangular(opts ...Option) Kernel {
	return newShape(ShapeTriangular, opts)
}

// New returns a built-in kernel. Unlike the shape constructors it rejects
// invalid arguments instead of falling back to defaults.
func New(s Shape, size quantity.Quantity, normalize bool) (Kernel, error) {
	if !s.builtin() {
		return Kernel{}, fmt.Errorf("%w: %v", ErrUnknownShape, s)
	}
	if !(size.Value > 0) || math.IsInf(size.Value, 0) {
		return Kernel{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return Kernel{shape: s, size: size, normalize: normalize}, nil
}

// FromFunc wraps fn as a kernel of the given size. The result is never
// normalized, reports itself as asymmetric and has no normalization factor
// or boundary.
func FromFunc(fn Func, size quantity.Quantity) Kernel {
	return Kernel{shape: ShapeFunction, size: size, fn: fn}
}

// OfSize returns a copy of k with its size replaced. Shape, normalization
// and wrapped function are kept; k itself is not modified.
func OfSize(k Kernel, size quantity.Quantity) Kernel {
	k.size = size
	return k
}

// Shape returns the kernel shape.
func (k Kernel) Shape() Shape { return k.shape }

// Size returns the kernel size.
func (k Kernel) Size() quantity.Quantity { return k.size }

// Normalized reports whether evaluations are scaled to unit area.
func (k Kernel) Normalized() bool { return k.normalize }

// IsSymmetric reports whether K(t) = K(-t). Function kernels are treated as
// asymmetric.
func (k Kernel) IsSymmetric() bool { return k.shape.Symmetric() }

// String implements fmt.Stringer.
func (k Kernel) String() string {
	return fmt.Sprintf("%v(size=%v, normalize=%t)", k.shape, k.size, k.normalize)
}

// Evaluate returns the kernel weights at the offsets t.
func (k Kernel) Evaluate(t quantity.Array) (quantity.Array, error) {
	return k.EvaluateWithSize(t, k.size)
}

// EvaluateWithSize is like Evaluate but uses size instead of the kernel's
// own size.
func (k Kernel) EvaluateWithSize(t quantity.Array, size quantity.Quantity) (quantity.Array, error) {
	raw, err := k.evaluateRaw(t, size)
	if err != nil {
		return quantity.Array{}, err
	}
	if !k.normalize {
		return raw, nil
	}
	f, err := k.NormalizationFactor(size)
	if err != nil {
		return quantity.Array{}, err
	}
	return raw.Scale(f), nil
}

func (k Kernel) evaluateRaw(t quantity.Array, size quantity.Quantity) (quantity.Array, error) {
	if k.shape == ShapeFunction && k.fn != nil {
		return k.fn(t, size), nil
	}
	info := shapes[k.shape]
	if info.eval == nil {
		return quantity.Array{}, fmt.Errorf("%w: evaluate %v", ErrNotImplemented, k.shape)
	}
	x, err := t.Ratio(size)
	if err != nil {
		return quantity.Array{}, err
	}
	for i, v := range x {
		x[i] = info.eval(v)
	}
	return quantity.NewArray(x, quantity.Dimensionless), nil
}

// NormalizationFactor returns the factor scaling the kernel of the given
// size to unit area. Its unit is the inverse of the size unit.
func (k Kernel) NormalizationFactor(size quantity.Quantity) (quantity.Quantity, error) {
	info := shapes[k.shape]
	if info.norm == nil {
		return quantity.Quantity{}, fmt.Errorf("%w: normalization factor of %v", ErrNotImplemented, k.shape)
	}
	return quantity.New(info.norm(size.Value), size.Unit.Inverse()), nil
}

// BoundaryEnclosingAtLeast returns b >= 0 such that the kernel integrated
// over [-b, b] covers at least fraction of its total area. fraction is not
// validated; values outside (0, 1) yield whatever the closed form gives,
// including infinities and NaN.
func (k Kernel) BoundaryEnclosingAtLeast(fraction float64) (quantity.Quantity, error) {
	info := shapes[k.shape]
	if info.boundary == nil {
		return quantity.Quantity{}, fmt.Errorf("%w: boundary of %v", ErrNotImplemented, k.shape)
	}
	return quantity.New(info.boundary(k.size.Value, fraction), k.size.Unit), nil
}
