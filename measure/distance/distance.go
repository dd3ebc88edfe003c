package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// ErrInvalidTau is returned for time constants that are not positive.
var ErrInvalidTau = errors.New("distance: tau must be positive")

// VanRossum returns the van Rossum distance between every pair of trains
// for the time constant tau. With tau = +Inf the distance degenerates to
// the absolute difference of the spike counts. sorted tells that every
// train is already in ascending order.
func VanRossum(trains []quantity.Array, tau quantity.Quantity, sorted bool) (*mat.Dense, error) {
	if !(tau.Value > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTau, tau)
	}
	if math.IsInf(tau.Value, 1) {
		return countDifference(trains), nil
	}

	k, err := kernel.New(kernel.ShapeLaplacian, tau, false)
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	return VanRossumWithKernel(trains, k, sorted)
}

// VanRossumWithKernel is VanRossum with the exponential replaced by k:
// d[i][j] = sqrt(D[i][i] + D[j][j] - D[i][j] - D[j][i]) for the summed
// distance matrix D of k. Small negative radicands from rounding are
// clamped to zero.
func VanRossumWithKernel(trains []quantity.Array, k kernel.Kernel, sorted bool) (*mat.Dense, error) {
	d, err := k.SummedDistMatrix(trains, sorted)
	if err != nil {
		return nil, err
	}
	n := d.N()
	if n == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := d.D.At(i, i) + d.D.At(j, j) - d.D.At(i, j) - d.D.At(j, i)
			out.Set(i, j, math.Sqrt(math.Max(v, 0)))
		}
	}
	return out, nil
}

// SchreiberSimilarity returns S[i][j] = D[i][j] / sqrt(D[i][i]·D[j][j]) for
// the summed distance matrix D of k. A pair of trains whose self terms are
// both zero, such as two empty trains, has similarity 1; a pair where only
// one of them is zero has similarity 0.
func SchreiberSimilarity(trains []quantity.Array, k kernel.Kernel, sorted bool) (*mat.Dense, error) {
	d, err := k.SummedDistMatrix(trains, sorted)
	if err != nil {
		return nil, err
	}
	n := d.N()
	if n == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			di, dj := d.D.At(i, i), d.D.At(j, j)
			switch {
			case di == 0 && dj == 0:
				out.Set(i, j, 1)
			case di == 0 || dj == 0:
				out.Set(i, j, 0)
			default:
				out.Set(i, j, d.D.At(i, j)/math.Sqrt(di*dj))
			}
		}
	}
	return out, nil
}

func countDifference(trains []quantity.Array) *mat.Dense {
	n := len(trains)
	if n == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, math.Abs(float64(trains[i].Len()-trains[j].Len())))
		}
	}
	return out
}
