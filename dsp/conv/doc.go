// Package conv provides one-dimensional linear convolution.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain convolution, used for kernels of up to 64 samples
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)           // Auto-selects algorithm
//	result, err := conv.ConvolveMode(signal, kernel, mode) // full, same or valid
//	result, err := conv.Direct(signal, kernel)             // Force direct convolution
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Modes
//
// For a signal of length M and a kernel of length K:
//
//   - [ModeFull]: M+K-1 samples
//   - [ModeSame]: M samples starting at (K-1)/2 in the full result
//   - [ModeValid]: max(0, M-K+1) samples; the operands are never swapped
//
// # Performance
//
// Benchmark results for convolution of 4096-sample signal (typical laptop):
//
//	Kernel 8:    Direct ~64μs, FFT ~330μs (use direct)
//	Kernel 64:   Direct ~360μs, FFT ~430μs (crossover region)
//	Kernel 256:  Direct ~1.4ms, FFT ~430μs (use FFT)
//
// The direct path skips zero input samples, which makes it cheaper still
// on sparse binned spike trains.
package conv
