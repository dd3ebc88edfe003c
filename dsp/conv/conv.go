package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Mode selects the part of the full linear convolution that is returned.
type Mode int

const (
	// ModeFull returns all len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame returns len(a) samples centred on the full result, starting
	// at offset (len(b)-1)/2.
	ModeSame

	// ModeValid returns the max(0, len(a)-len(b)+1) samples that do not
	// depend on zero padding. Operands are never swapped.
	ModeValid
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode named "full", "same" or "valid".
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{ModeFull, ModeSame, ModeValid} {
		if m.String() == s {
			return m, true
		}
	}
	return ModeFull, false
}

// directThreshold is the kernel length up to which Convolve stays in the
// time domain.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	if m < 4 {
		for i, x := range a {
			for j, y := range b {
				dst[i+j] += x * y
			}
		}
		return
	}

	temp := make([]float64, m)
	for i, x := range a {
		if x == 0 {
			// Binned spike counts are mostly zero.
			continue
		}
		vecmath.ScaleBlock(temp, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
// Kernels of up to 64 samples use direct convolution, longer ones FFT-based
// overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// The full result is symmetric in its operands.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}
	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with the given output mode. The mode
// refers to a as the signal and b as the kernel.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// ModeLen returns the output length of mode for a signal of length lenA and
// a kernel of length lenB.
func ModeLen(lenA, lenB int, mode Mode) int {
	switch mode {
	case ModeSame:
		return lenA
	case ModeValid:
		return max(0, lenA-lenB+1)
	default:
		return lenA + lenB - 1
	}
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA < lenB {
			return []float64{}
		}
		return full[lenB-1 : lenA]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
