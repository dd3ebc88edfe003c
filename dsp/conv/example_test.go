package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spike/dsp/conv"
)

func ExampleDirect() {
	// Smooth a binned spike train with a short triangular kernel.
	counts := []float64{0, 1, 0, 0, 2, 0, 0}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(counts, kernel)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("%.2f\n", result)

	// Output:
	// Output length: 9
	// [0.00 0.25 0.50 0.25 0.50 1.00 0.50 0.00 0.00]
}

func ExampleConvolveMode() {
	counts := []float64{1, 2, 3, 4, 5}
	kernel := []float64{1, 2, 3}

	for _, mode := range []conv.Mode{conv.ModeFull, conv.ModeSame, conv.ModeValid} {
		out, _ := conv.ConvolveMode(counts, kernel, mode)
		fmt.Printf("%-5v %v\n", mode, out)
	}

	// Output:
	// full  [1 4 10 16 22 22 15]
	// same  [4 10 16 22 22]
	// valid [10 16 22]
}

func ExampleOverlapAdd() {
	// A long Gaussian reused across several trains.
	kernel := make([]float64, 201)
	for i := range kernel {
		x := float64(i-100) / 25
		kernel[i] = math.Exp(-0.5 * x * x)
	}

	convolver, _ := conv.NewOverlapAdd(kernel, 256)
	fmt.Printf("Block size: %d\n", convolver.BlockSize())
	fmt.Printf("FFT size: %d\n", convolver.FFTSize())

	for i := range 3 {
		counts := make([]float64, 500+100*i)
		result, _ := convolver.Process(counts)
		fmt.Printf("Result %d length: %d\n", i+1, len(result))
	}

	// Output:
	// Block size: 256
	// FFT size: 512
	// Result 1 length: 700
	// Result 2 length: 800
	// Result 3 length: 900
}
