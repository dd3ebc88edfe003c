package spiketrain

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// Errors returned by spike train functions.
var (
	ErrInvalidInterval = errors.New("spiketrain: invalid interval")
	ErrSpikeOutOfRange = errors.New("spiketrain: spike outside interval")
	ErrNoTrains        = errors.New("spiketrain: no spike trains")
	ErrInvalidRate     = errors.New("spiketrain: sampling rate must be positive and finite")
)

// Train is a sequence of spike times recorded on [Start, Stop].
type Train struct {
	Times quantity.Array
	Start quantity.Quantity
	Stop  quantity.Quantity
}

// New returns a train after checking that start and stop are compatible
// with the spike times, that start <= stop, and that every spike lies in
// [start, stop]. times is not copied.
func New(times quantity.Array, start, stop quantity.Quantity) (Train, error) {
	s, err := start.Rescale(times.Unit)
	if err != nil {
		return Train{}, fmt.Errorf("%w: start %v: %w", ErrInvalidInterval, start, err)
	}
	e, err := stop.Rescale(times.Unit)
	if err != nil {
		return Train{}, fmt.Errorf("%w: stop %v: %w", ErrInvalidInterval, stop, err)
	}
	if !(s.Value <= e.Value) {
		return Train{}, fmt.Errorf("%w: start %v after stop %v", ErrInvalidInterval, start, stop)
	}
	for i, v := range times.Values {
		if !(v >= s.Value && v <= e.Value) {
			return Train{}, fmt.Errorf("%w: spike %d at %v not in [%v, %v]",
				ErrSpikeOutOfRange, i, times.At(i), start, stop)
		}
	}
	return Train{Times: times, Start: start, Stop: stop}, nil
}

// FromTimes returns a train whose interval spans its first to its last
// spike. An empty train gets the interval [0, 0].
func FromTimes(times quantity.Array) Train {
	if times.Len() == 0 {
		return Train{Times: times, Start: quantity.New(0, times.Unit), Stop: quantity.New(0, times.Unit)}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range times.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return Train{Times: times, Start: quantity.New(lo, times.Unit), Stop: quantity.New(hi, times.Unit)}
}

// Len returns the number of spikes.
func (t Train) Len() int { return t.Times.Len() }

// Duration returns Stop - Start in the unit of Start.
func (t Train) Duration() (quantity.Quantity, error) {
	e, err := t.Stop.Rescale(t.Start.Unit)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.New(e.Value-t.Start.Value, t.Start.Unit), nil
}

// Sorted returns a copy of t with ascending spike times.
func (t Train) Sorted() Train {
	t.Times = t.Times.Clone()
	sort.Float64s(t.Times.Values)
	return t
}

// String implements fmt.Stringer.
func (t Train) String() string {
	return fmt.Sprintf("Train(%d spikes, [%v, %v])", t.Len(), t.Start, t.Stop)
}
