package kernel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// DefaultAreaFraction is the area fraction covered by default
// discretizations.
const DefaultAreaFraction = 0.99999

// DiscretizeOptions configures Discretize.
type DiscretizeOptions struct {
	// AreaFraction is the fraction in (0, 1) of the kernel area the samples
	// cover at least. It requires a kernel with a boundary and is ignored
	// when NumBins is set. Zero means unset.
	AreaFraction float64

	// NumBins is the number of samples. Zero means unset, so an empty
	// discretization cannot be requested; with AreaFraction also unset
	// Discretize returns ErrInvalidParameters.
	NumBins int

	// EnsureUnitArea rescales the samples so that their sum times the
	// sampling step is exactly one.
	EnsureUnitArea bool
}

// DefaultDiscretizeOptions returns options covering DefaultAreaFraction of
// the kernel without area correction.
func DefaultDiscretizeOptions() DiscretizeOptions {
	return DiscretizeOptions{
		AreaFraction: DefaultAreaFraction,
	}
}

// Discretize samples k at integer multiples of 1/samplingRate.
//
// With NumBins = n the offsets are -⌈n/2⌉ … ⌊n/2⌋-1, exactly n samples.
// Otherwise the offsets run from ⌈-b/step⌉ to ⌊b/step⌋ inclusive, b being
// the kernel's boundary enclosing AreaFraction of its area.
func Discretize(k Kernel, samplingRate quantity.Quantity, opts DiscretizeOptions) (quantity.Array, error) {
	if !(samplingRate.Value > 0) || !samplingRate.IsFinite() {
		return quantity.Array{}, fmt.Errorf("%w: sampling rate %v", ErrInvalidParameters, samplingRate)
	}
	step := samplingRate.Inverse()

	var start, stop int
	switch {
	case opts.NumBins < 0:
		return quantity.Array{}, fmt.Errorf("%w: negative number of bins %d", ErrInvalidParameters, opts.NumBins)
	case opts.NumBins > 0:
		start = -((opts.NumBins + 1) / 2)
		stop = opts.NumBins / 2
	case opts.AreaFraction != 0 && !math.IsNaN(opts.AreaFraction):
		b, err := k.BoundaryEnclosingAtLeast(opts.AreaFraction)
		if err != nil {
			return quantity.Array{}, err
		}
		b, err = b.Rescale(step.Unit)
		if err != nil {
			return quantity.Array{}, err
		}
		r := b.Value / step.Value
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return quantity.Array{}, fmt.Errorf("%w: boundary %v for area fraction %v", ErrInvalidParameters, b, opts.AreaFraction)
		}
		start = int(math.Ceil(-r))
		stop = int(math.Floor(r)) + 1
	default:
		return quantity.Array{}, fmt.Errorf("%w: one of area fraction and number of bins must be set", ErrInvalidParameters)
	}

	t := make([]float64, max(0, stop-start))
	for i := range t {
		t[i] = float64(start+i) * step.Value
	}

	w, err := k.Evaluate(quantity.NewArray(t, step.Unit))
	if err != nil {
		return quantity.Array{}, err
	}

	if opts.EnsureUnitArea {
		area := vecmath.Sum(w.Values) * step.Value
		vecmath.ScaleBlockInPlace(w.Values, 1/area)
		w.Unit = step.Unit.Inverse()
	}

	return w, nil
}
