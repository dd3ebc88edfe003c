package kernel

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// laplacianSummedDistMatrix computes the summed distance matrix of the
// Laplacian kernel in O(N²·n) time following
//
//	Houghton, C., & Kreuz, T. (2012). On the efficient calculation of van
//	Rossum distances. Network: Computation in Neural Systems, 23(1-2), 48-58.
//
// with two corrections to the paper: the left side of formula (9) is
// divided by two, and the last sums of (9) and (11) run over v_j >= u_i
// and u_j >= v_i respectively.
//
// Sequences are held in a rectangular buffer padded with NaN; sizes keeps
// the real length of every row. Every exponent below is of the form
// earlier - later on sorted data and therefore <= 0.
func (k Kernel) laplacianSummedDistMatrix(seqs []quantity.Array, presorted bool) (DistMatrix, error) {
	n := len(seqs)
	if n == 0 {
		return emptyDistMatrix(), nil
	}

	sizes := make([]int, n)
	cols := 1
	for u, s := range seqs {
		sizes[u] = s.Len()
		if sizes[u] > cols {
			cols = sizes[u]
		}
	}

	values := make([]float64, n*cols)
	for i := range values {
		values[i] = math.NaN()
	}
	row := func(buf []float64, u int) []float64 {
		return buf[u*cols : u*cols+sizes[u]]
	}

	for u, s := range seqs {
		// Ratio returns a fresh slice, so sorting never touches caller data.
		x, err := s.Ratio(k.size)
		if err != nil {
			return DistMatrix{}, err
		}
		if !presorted {
			sort.Float64s(x)
		}
		copy(row(values, u), x)
	}

	// markage[u][i] = Σ_{l<i} exp(x_l - x_i) for the sorted row x.
	markage := make([]float64, n*cols)
	for u := 0; u < n; u++ {
		x := row(values, u)
		m := row(markage, u)
		for i := 0; i+1 < len(x); i++ {
			m[i+1] = (m[i] + 1) * math.Exp(x[i]-x[i+1])
		}
	}

	d := mat.NewDense(n, n, nil)

	for u := 0; u < n; u++ {
		sum := 0.0
		for _, m := range row(markage, u) {
			sum += m
		}
		d.Set(u, u, float64(sizes[u])+2*sum)
	}

	for u := 0; u < n; u++ {
		xu, mu := row(values, u), row(markage, u)
		for v := 0; v < u; v++ {
			xv, mv := row(values, v), row(markage, v)

			// Elements of v at or before each element of u.
			s := 0.0
			for _, x := range xu {
				j := sort.Search(len(xv), func(i int) bool { return xv[i] > x }) - 1
				if j < 0 {
					continue
				}
				s += math.Exp(xv[j]-x) * (1 + mv[j])
			}
			// Elements of u strictly before each element of v.
			for _, y := range xv {
				j := sort.SearchFloat64s(xu, y) - 1
				if j < 0 {
					continue
				}
				s += math.Exp(xu[j]-y) * (1 + mu[j])
			}

			d.Set(u, v, s)
			d.Set(v, u, s)
		}
	}

	unit := quantity.Dimensionless
	if k.normalize {
		f, err := k.NormalizationFactor(k.size)
		if err != nil {
			return DistMatrix{}, err
		}
		d.Scale(f.Value, d)
		unit = f.Unit
	}

	return DistMatrix{D: d, Unit: unit}, nil
}
