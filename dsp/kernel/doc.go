// Package kernel provides one-dimensional smoothing kernels for spike train
// analysis.
//
// A [Kernel] is an immutable value combining a [Shape], a size (the
// characteristic width, a time quantity) and a normalization flag. Five
// closed-form shapes are built in:
//
//   - CausalDecayingExp: exp(-t/k) for t >= 0, zero before
//   - Gaussian: exp(-t²/(2k²))
//   - Laplacian: exp(-|t/k|)
//   - Rectangular: 1 for |t| < k
//   - Triangular: max(0, 1-|t|/k)
//
// Normalized kernels integrate to one. Arbitrary functions can be wrapped
// with [FromFunc]; such kernels cannot be normalized and have no known
// boundary.
//
// # Usage
//
//	k := kernel.NewGaussian(kernel.WithSize(quantity.Milliseconds(20)))
//	w, err := k.Evaluate(quantity.NewArray([]float64{-10, 0, 10}, quantity.Millisecond))
//
// # Discretization
//
// [Discretize] samples a kernel at a sampling rate, either covering a
// fraction of its area or with a fixed number of samples. The result is the
// filter used by package rate to smooth binned spike trains.
//
// # Summed distance matrices
//
// [Kernel.SummedDistMatrix] sums the kernel over all element pairs of every
// pair of sequences. The generic algorithm costs O(N²·n²) for N sequences
// of n elements; symmetric shapes compute only the upper triangle. The
// Laplacian shape uses the running-sum method of Houghton and Kreuz (2012),
// which costs O(N²·n) time and O(N²+N·n) memory and is the basis of the
// van Rossum distance.
package kernel
