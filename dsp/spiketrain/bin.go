package spiketrain

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// BinOption configures Bin.
type BinOption func(*binConfig)

type binConfig struct {
	start *quantity.Quantity
	stop  *quantity.Quantity
}

// WithStart sets the left edge of the binning grid instead of the latest
// train start.
func WithStart(q quantity.Quantity) BinOption {
	return func(c *binConfig) {
		c.start = &q
	}
}

// WithStop sets the right edge of the binning grid instead of the earliest
// train stop.
func WithStop(q quantity.Quantity) BinOption {
	return func(c *binConfig) {
		c.stop = &q
	}
}

// Bin histograms every train of every group on a common grid of
// round(duration·samplingRate) bins and returns the counts, keyed and
// ordered like groups, together with the bin edges. Edges are in the time
// unit of the first train of the lowest key. Spikes outside the grid are
// dropped.
func Bin(groups map[int][]Train, samplingRate quantity.Quantity, opts ...BinOption) (map[int][][]float64, quantity.Array, error) {
	var cfg binConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var unit quantity.Unit
	found := false
	for _, k := range keys {
		if len(groups[k]) > 0 {
			unit = groups[k][0].Times.Unit
			found = true
			break
		}
	}
	if !found {
		return nil, quantity.Array{}, ErrNoTrains
	}

	rate, err := samplingRate.Rescale(unit.Inverse())
	if err != nil {
		return nil, quantity.Array{}, fmt.Errorf("%w: %v: %w", ErrInvalidRate, samplingRate, err)
	}
	if !(rate.Value > 0) || !rate.IsFinite() {
		return nil, quantity.Array{}, fmt.Errorf("%w: %v", ErrInvalidRate, samplingRate)
	}

	start, stop := math.Inf(-1), math.Inf(1)
	for _, k := range keys {
		for _, t := range groups[k] {
			s, err := t.Start.Rescale(unit)
			if err != nil {
				return nil, quantity.Array{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
			}
			e, err := t.Stop.Rescale(unit)
			if err != nil {
				return nil, quantity.Array{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
			}
			start = math.Max(start, s.Value)
			stop = math.Min(stop, e.Value)
		}
	}
	if cfg.start != nil {
		s, err := cfg.start.Rescale(unit)
		if err != nil {
			return nil, quantity.Array{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
		}
		start = s.Value
	}
	if cfg.stop != nil {
		e, err := cfg.stop.Rescale(unit)
		if err != nil {
			return nil, quantity.Array{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
		}
		stop = e.Value
	}
	if !(start <= stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, quantity.Array{}, fmt.Errorf("%w: [%v, %v] %v", ErrInvalidInterval, start, stop, unit)
	}

	nBins := int(math.Round((stop - start) * rate.Value))
	edges := []float64{start}
	if nBins > 0 {
		edges = floats.Span(make([]float64, nBins+1), start, stop)
		edges[nBins] = stop
	}

	binned := make(map[int][][]float64, len(groups))
	for _, k := range keys {
		rows := make([][]float64, len(groups[k]))
		for i, t := range groups[k] {
			counts, err := histogram(t, unit, edges)
			if err != nil {
				return nil, quantity.Array{}, err
			}
			rows[i] = counts
		}
		binned[k] = rows
	}

	return binned, quantity.NewArray(edges, unit), nil
}

// histogram counts the spikes of t in the bins given by edges. The last
// bin is closed on the right.
func histogram(t Train, unit quantity.Unit, edges []float64) ([]float64, error) {
	counts := make([]float64, len(edges)-1)

	times, err := t.Times.Rescale(unit)
	if err != nil {
		return nil, fmt.Errorf("spiketrain: spike times: %w", err)
	}
	sort.Float64s(times.Values)

	lo, hi := edges[0], edges[len(edges)-1]
	x := times.Values[:0]
	onStop := 0
	for _, v := range times.Values {
		switch {
		case v >= lo && v < hi:
			x = append(x, v)
		case v == hi:
			onStop++
		}
	}

	if len(counts) == 0 {
		if times.Len() > 0 {
			logrus.Debugf("spiketrain: dropped all %d spikes, grid has no bins", times.Len())
		}
		return counts, nil
	}
	if dropped := times.Len() - len(x) - onStop; dropped > 0 {
		logrus.Debugf("spiketrain: dropped %d of %d spikes outside [%g, %g] %v",
			dropped, times.Len(), lo, hi, unit)
	}

	stat.Histogram(counts, edges, x, nil)
	counts[len(counts)-1] += float64(onStop)
	return counts, nil
}
