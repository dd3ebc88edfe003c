package kernel

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/cwbudde/algo-spike/dsp/quantity"
	"github.com/cwbudde/algo-spike/internal/testutil"
)

// naiveSummedDist computes Σ_i Σ_j K(a_i - b_j) one evaluation at a time.
func naiveSummedDist(t *testing.T, k Kernel, a, b quantity.Array) float64 {
	t.Helper()
	sum := 0.0
	for _, x := range a.Values {
		for _, y := range b.Values {
			w, err := k.Evaluate(quantity.NewArray([]float64{x - y}, a.Unit))
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			sum += w.Values[0]
		}
	}
	return sum
}

func randomSequences(n int, seed int64) []quantity.Array {
	seqs := make([]quantity.Array, n)
	for i := range seqs {
		length := 3 + int(seed+int64(i)*5)%8
		seqs[i] = quantity.NewArray(testutil.UniformTimes(seed+int64(i), length, 2), quantity.Second)
	}
	return seqs
}

func TestSummedDistMatrixEmpty(t *testing.T) {
	for _, k := range append(builtins(), FromFunc(nil, quantity.Seconds(1)), Kernel{}) {
		d, err := k.SummedDistMatrix(nil, false)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", k.Shape(), err)
		}
		if d.N() != 0 {
			t.Fatalf("%v: N = %d, want 0", k.Shape(), d.N())
		}
	}
}

func TestSummedDistMatrixAllEmptySequences(t *testing.T) {
	seqs := []quantity.Array{seconds(), seconds(), seconds()}

	for _, k := range builtins() {
		t.Run(k.Shape().String(), func(t *testing.T) {
			d, err := k.SummedDistMatrix(seqs, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.N() != 3 {
				t.Fatalf("N = %d, want 3", d.N())
			}
			for u := 0; u < 3; u++ {
				for v := 0; v < 3; v++ {
					if d.D.At(u, v) != 0 {
						t.Fatalf("D[%d][%d] = %v, want 0", u, v, d.D.At(u, v))
					}
				}
			}
		})
	}
}

func TestGenericSummedDistMatrixMatchesNaive(t *testing.T) {
	seqs := []quantity.Array{
		seconds(0.1, 0.5, 0.9),
		seconds(0.2, 1.4),
		seconds(),
		seconds(0.3, 0.31, 0.8, 1.9),
	}

	for _, k := range builtins(WithSize(quantity.Milliseconds(300))) {
		t.Run(k.Shape().String(), func(t *testing.T) {
			d, err := k.SummedDistMatrix(seqs, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for u := range seqs {
				for v := range seqs {
					want := naiveSummedDist(t, k, seqs[u], seqs[v])
					if math.Abs(d.D.At(u, v)-want) > 1e-9*math.Max(1, math.Abs(want)) {
						t.Fatalf("D[%d][%d] = %v, want %v", u, v, d.D.At(u, v), want)
					}
				}
			}
		})
	}
}

func TestAsymmetricKernelComputesBothTriangles(t *testing.T) {
	k := NewCausalDecayingExp(WithNormalize(false))
	seqs := []quantity.Array{seconds(1), seconds(0)}

	d, err := k.SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// K(1-0) = e^-1, K(0-1) = 0.
	if math.Abs(d.D.At(0, 1)-math.Exp(-1)) > 1e-15 {
		t.Fatalf("D[0][1] = %v, want e^-1", d.D.At(0, 1))
	}
	if d.D.At(1, 0) != 0 {
		t.Fatalf("D[1][0] = %v, want 0", d.D.At(1, 0))
	}
}

func TestFunctionKernelTakesFullPath(t *testing.T) {
	laplace := NewLaplacian(WithNormalize(false))
	wrapped := FromFunc(func(t quantity.Array, size quantity.Quantity) quantity.Array {
		w, _ := laplace.EvaluateWithSize(t, size)
		return w
	}, quantity.Seconds(1))

	seqs := randomSequences(4, 11)

	want, err := laplace.SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := wrapped.SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for u := range seqs {
		for v := range seqs {
			testutil.RequireRelNearlyEqual(t, got.D.At(u, v), want.D.At(u, v), 1e-9)
		}
	}
}

func TestLaplacianOptimizedMatchesGeneric(t *testing.T) {
	for _, normalize := range []bool{false, true} {
		k := NewLaplacian(WithSize(quantity.Milliseconds(250)), WithNormalize(normalize))

		for seed := int64(1); seed <= 5; seed++ {
			seqs := randomSequences(5, seed)

			fast, err := k.SummedDistMatrix(seqs, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			slow, err := k.genericSummedDistMatrix(seqs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fast.Unit != slow.Unit {
				t.Fatalf("unit = %v, want %v", fast.Unit, slow.Unit)
			}
			for u := range seqs {
				for v := range seqs {
					testutil.RequireRelNearlyEqual(t, fast.D.At(u, v), slow.D.At(u, v), 1e-9)
				}
			}
		}
	}
}

func TestLaplacianSelfDistanceClosedForm(t *testing.T) {
	k := NewLaplacian(WithNormalize(false))
	// Two coincident spikes: 2 + 2·e^0.
	d, err := k.SummedDistMatrix([]quantity.Array{seconds(1, 1)}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d.D.At(0, 0)-4) > 1e-15 {
		t.Fatalf("D[0][0] = %v, want 4", d.D.At(0, 0))
	}
}

func TestLaplacianTiesAndEmptyRows(t *testing.T) {
	k := NewLaplacian(WithSize(quantity.Seconds(0.5)), WithNormalize(false))
	seqs := []quantity.Array{
		seconds(0.5, 1, 1.5),
		seconds(),
		seconds(1, 1.5, 3),
		seconds(0.5),
	}

	fast, err := k.SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for u := range seqs {
		for v := range seqs {
			want := naiveSummedDist(t, k, seqs[u], seqs[v])
			if math.Abs(fast.D.At(u, v)-want) > 1e-12 {
				t.Fatalf("D[%d][%d] = %v, want %v", u, v, fast.D.At(u, v), want)
			}
		}
	}
}

func TestLaplacianDoesNotSortCallerData(t *testing.T) {
	seqs := []quantity.Array{seconds(0.9, 0.1, 0.5), seconds(2, 1)}

	if _, err := NewLaplacian().SummedDistMatrix(seqs, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sort.Float64sAreSorted(seqs[0].Values) || sort.Float64sAreSorted(seqs[1].Values) {
		t.Fatal("caller sequences were sorted in place")
	}
}

func TestLaplacianPresortedHint(t *testing.T) {
	k := NewLaplacian(WithNormalize(false))
	seqs := randomSequences(3, 42)
	sorted := make([]quantity.Array, len(seqs))
	for i, s := range seqs {
		sorted[i] = s.Clone()
		sort.Float64s(sorted[i].Values)
	}

	a, err := k.SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := k.SummedDistMatrix(sorted, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for u := range seqs {
		for v := range seqs {
			testutil.RequireRelNearlyEqual(t, a.D.At(u, v), b.D.At(u, v), 1e-12)
		}
	}
}

func TestLaplacianLongSequencesStayFinite(t *testing.T) {
	k := NewLaplacian(WithSize(quantity.Milliseconds(1)), WithNormalize(false))
	seqs := []quantity.Array{
		quantity.NewArray(testutil.RegularTimes(500, 0, 10), quantity.Second),
		quantity.NewArray(testutil.RegularTimes(500, 5, 10), quantity.Second),
	}

	d, err := k.SummedDistMatrix(seqs, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireFinite(t, d.D.RawMatrix().Data)
	if math.Abs(d.D.At(0, 0)-500) > 1e-9 {
		t.Fatalf("D[0][0] = %v, want 500", d.D.At(0, 0))
	}
}

func TestSummedDistMatrixUnits(t *testing.T) {
	seqs := []quantity.Array{seconds(0, 1)}

	for _, k := range builtins() {
		d, err := k.SummedDistMatrix(seqs, false)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", k.Shape(), err)
		}
		if d.Unit != quantity.Hertz {
			t.Errorf("%v: unit = %v, want Hz", k.Shape(), d.Unit)
		}
		if q := d.At(0, 0); q.Unit != quantity.Hertz {
			t.Errorf("%v: At unit = %v", k.Shape(), q.Unit)
		}
	}

	d, err := NewGaussian(WithNormalize(false)).SummedDistMatrix(seqs, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Unit != quantity.Dimensionless {
		t.Errorf("unit = %v, want dimensionless", d.Unit)
	}
}

func TestSummedDistMatrixErrors(t *testing.T) {
	var abstract Kernel
	if _, err := abstract.SummedDistMatrix([]quantity.Array{seconds(1)}, false); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}

	bad := []quantity.Array{quantity.NewArray([]float64{1}, quantity.Hertz)}
	if _, err := NewLaplacian().SummedDistMatrix(bad, false); !errors.Is(err, quantity.ErrIncompatibleUnits) {
		t.Errorf("expected ErrIncompatibleUnits, got %v", err)
	}
	if _, err := NewGaussian().SummedDistMatrix(bad, false); !errors.Is(err, quantity.ErrIncompatibleUnits) {
		t.Errorf("expected ErrIncompatibleUnits, got %v", err)
	}
}
