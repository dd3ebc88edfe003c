package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd convolves signals with a fixed kernel by FFT block processing.
// The kernel spectrum and the FFT plan are computed once, so an OverlapAdd
// is cheap to reuse for many signals. It is not safe for concurrent use.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int // power of two >= blockSize + kernelLen - 1

	plan *algofft.Plan[complex128]

	block    []complex128
	spectrum []complex128
}

// NewOverlapAdd creates a convolver for kernel. blockSize is the number of
// input samples per FFT block; 0 picks max(256, nextPow2(len(kernel))).
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	kernelLen := len(kernel)
	if blockSize == 0 {
		blockSize = max(256, nextPowerOf2(kernelLen))
	}
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: kernelLen,
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		spectrum:  make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.processTo(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo is like Process but writes into output, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := len(input) + oa.kernelLen - 1; len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}
	for i := range output {
		output[i] = 0
	}
	return oa.processTo(output, input)
}

func (oa *OverlapAdd) processTo(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		for i := range oa.block {
			oa.block[i] = 0
		}
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range oa.spectrum {
			oa.spectrum[i] = oa.block[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.spectrum, oa.spectrum); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := 0; i < n; i++ {
			output[start+i] += real(oa.spectrum[i])
		}
	}
	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
