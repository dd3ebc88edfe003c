package rate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spike/dsp/conv"
	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
	"github.com/cwbudde/algo-spike/dsp/spiketrain"
)

// Smooth convolves binned with k discretized at samplingRate, which should
// be the rate binned was obtained with. The result carries the unit of the
// discretized kernel. An empty bin array gives an empty result.
func Smooth(binned []float64, k kernel.Kernel, samplingRate quantity.Quantity, mode conv.Mode, opts kernel.DiscretizeOptions) (quantity.Array, error) {
	w, err := kernel.Discretize(k, samplingRate, opts)
	if err != nil {
		return quantity.Array{}, err
	}
	if len(binned) == 0 {
		return quantity.NewArray([]float64{}, w.Unit), nil
	}

	out, err := conv.ConvolveMode(binned, w.Values, mode)
	if err != nil {
		return quantity.Array{}, fmt.Errorf("rate: %w", err)
	}
	return quantity.NewArray(out, w.Unit), nil
}

// Convolve bins train at samplingRate and smooths it with k. edges has one
// element more than smoothed: the bin edges of the train, extended or
// shortened symmetrically by the bins mode adds or removes. A train
// without bins, or one shorter than the kernel in ModeValid, gives empty
// results.
//
// Convolve panics if mode changes the length by an odd number of bins,
// which happens for ModeFull with an even number of kernel samples.
func Convolve(train spiketrain.Train, k kernel.Kernel, samplingRate quantity.Quantity, mode conv.Mode,
	binOpts []spiketrain.BinOption, opts kernel.DiscretizeOptions) (smoothed, edges quantity.Array, err error) {
	binned, bins, err := spiketrain.Bin(map[int][]spiketrain.Train{0: {train}}, samplingRate, binOpts...)
	if err != nil {
		return quantity.Array{}, quantity.Array{}, err
	}
	counts := binned[0][0]

	smoothed, err = Smooth(counts, k, samplingRate, mode, opts)
	if err != nil {
		return quantity.Array{}, quantity.Array{}, err
	}
	if len(counts) == 0 || smoothed.Len() == 0 {
		return smoothed, quantity.NewArray([]float64{}, bins.Unit), nil
	}

	diff := smoothed.Len() - len(counts)
	if diff%2 != 0 {
		panic(fmt.Sprintf("rate: smoothed length %d and bin count %d differ by an odd number", smoothed.Len(), len(counts)))
	}
	extra := float64(diff / 2)

	r, err := samplingRate.Rescale(bins.Unit.Inverse())
	if err != nil {
		return quantity.Array{}, quantity.Array{}, err
	}
	lo := bins.Values[0] - extra/r.Value
	hi := bins.Values[bins.Len()-1] + extra/r.Value

	e := floats.Span(make([]float64, smoothed.Len()+1), lo, hi)
	return smoothed, quantity.NewArray(e, bins.Unit), nil
}
