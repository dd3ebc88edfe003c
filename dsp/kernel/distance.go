package kernel

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spike/dsp/quantity"
)

// DistMatrix is the square matrix of summed kernel values between every
// ordered pair of sequences: D[u][v] = Σ_i Σ_j K(a_i - b_j) with a the u-th
// and b the v-th sequence.
type DistMatrix struct {
	D    *mat.Dense
	Unit quantity.Unit
}

func emptyDistMatrix() DistMatrix {
	return DistMatrix{D: &mat.Dense{}, Unit: quantity.Dimensionless}
}

// N returns the number of sequences.
func (m DistMatrix) N() int {
	if m.D == nil || m.D.IsEmpty() {
		return 0
	}
	r, _ := m.D.Dims()
	return r
}

// At returns D[u][v] with its unit.
func (m DistMatrix) At(u, v int) quantity.Quantity {
	return quantity.New(m.D.At(u, v), m.Unit)
}

// SummedDistMatrix returns the summed kernel values for every pair of seqs.
// The element units must be compatible with the kernel size.
//
// presorted is a hint for algorithms that need ascending sequences; set it
// only if every sequence is sorted, otherwise the result is silently wrong.
// Unsorted input is sorted on private copies.
func (k Kernel) SummedDistMatrix(seqs []quantity.Array, presorted bool) (DistMatrix, error) {
	if k.shape == ShapeLaplacian {
		return k.laplacianSummedDistMatrix(seqs, presorted)
	}
	return k.genericSummedDistMatrix(seqs)
}

// genericSummedDistMatrix evaluates the kernel on all pairwise differences.
// Only symmetric shapes skip the lower triangle; function kernels always
// take the full N² path even if the wrapped function happens to be
// symmetric.
func (k Kernel) genericSummedDistMatrix(seqs []quantity.Array) (DistMatrix, error) {
	n := len(seqs)
	if n == 0 {
		return emptyDistMatrix(), nil
	}

	probe, err := k.Evaluate(seqs[0])
	if err != nil {
		return DistMatrix{}, err
	}

	d := mat.NewDense(n, n, nil)
	symmetric := k.IsSymmetric()

	for u := 0; u < n; u++ {
		v0 := 0
		if symmetric {
			v0 = u
		}
		for v := v0; v < n; v++ {
			s, err := k.pairSum(seqs[u], seqs[v], probe.Unit)
			if err != nil {
				return DistMatrix{}, err
			}
			d.Set(u, v, s)
			if symmetric {
				d.Set(v, u, s)
			}
		}
	}

	return DistMatrix{D: d, Unit: probe.Unit}, nil
}

// pairSum returns Σ_i Σ_j K(a_i - b_j) expressed in unit.
func (k Kernel) pairSum(a, b quantity.Array, unit quantity.Unit) (float64, error) {
	bb, err := b.Rescale(a.Unit)
	if err != nil {
		return 0, err
	}

	diffs := make([]float64, 0, len(a.Values)*len(bb.Values))
	for _, y := range bb.Values {
		for _, x := range a.Values {
			diffs = append(diffs, x-y)
		}
	}

	w, err := k.Evaluate(quantity.NewArray(diffs, a.Unit))
	if err != nil {
		return 0, err
	}
	w, err = w.Rescale(unit)
	if err != nil {
		return 0, err
	}

	return vecmath.Sum(w.Values), nil
}
