// Package rate estimates firing rates by smoothing binned spike trains with
// a discretized kernel.
//
// [Smooth] convolves an existing bin array; [Convolve] bins a single train
// first and also returns the bin edges of the smoothed result:
//
//	k := kernel.NewGaussian(kernel.WithSize(quantity.Milliseconds(20)))
//	rates, edges, err := rate.Convolve(train, k, quantity.Hz(1000), conv.ModeSame,
//		nil, kernel.DefaultDiscretizeOptions())
//
// With a normalized kernel the result is in the inverse unit of the kernel
// size: a kernel sized in ms yields rates in kHz.
package rate
