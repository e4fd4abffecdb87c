// Package mathutil provides the numerical kernels behind natural cubic spline fitting.
package mathutil

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a tridiagonal system has no unique solution.
var ErrSingular = errors.New("singular tridiagonal system")

// SolveTridiagonal solves A·x = rhs for the n×n tridiagonal matrix A with
// sub-diagonal sub (length n-1), main diagonal diag (length n) and
// super-diagonal super (length n-1).
//
// The inputs are not modified.
func SolveTridiagonal(sub, diag, super, rhs []float64) ([]float64, error) {
	n := len(diag)
	if n == 0 {
		return []float64{}, nil
	}
	if len(sub) != n-1 || len(super) != n-1 || len(rhs) != n {
		return nil, fmt.Errorf("%w: bad dimensions (n=%d, sub=%d, super=%d, rhs=%d)",
			ErrSingular, n, len(sub), len(super), len(rhs))
	}

	// mat.Tridiag uses the slices as backing storage, so hand it copies.
	a := mat.NewTridiag(n,
		append([]float64(nil), sub...),
		append([]float64(nil), diag...),
		append([]float64(nil), super...),
	)
	b := mat.NewVecDense(n, append([]float64(nil), rhs...))

	var x mat.VecDense
	if err := a.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	if floats.HasNaN(out) {
		return nil, fmt.Errorf("%w: solution contains NaN", ErrSingular)
	}
	return out, nil
}

// NaturalSplineSecondDerivatives returns the second derivative of the natural
// cubic spline through (x[i], y[i]) at every knot. The first and last entries
// are zero. x must be strictly increasing and contain at least two knots;
// callers validate this.
//
// For interior knot i the continuity conditions give
//
//	h[i-1]·M[i-1] + 2(h[i-1]+h[i])·M[i] + h[i]·M[i+1] = 6·(s[i] - s[i-1])
//
// where h[i] = x[i+1]-x[i] and s[i] = (y[i+1]-y[i])/h[i].
func NaturalSplineSecondDerivatives(x, y []float64) ([]float64, error) {
	n := len(x)
	m := make([]float64, n)
	if n < 3 {
		// Two knots: a straight line, M = 0 everywhere.
		return m, nil
	}

	interior := n - 2
	sub := make([]float64, interior-1)
	diag := make([]float64, interior)
	super := make([]float64, interior-1)
	rhs := make([]float64, interior)

	for k := range interior {
		i := k + 1
		hPrev := x[i] - x[i-1]
		hNext := x[i+1] - x[i]
		diag[k] = splineDiagonalFactor * (hPrev + hNext)
		rhs[k] = splineRHSFactor * ((y[i+1]-y[i])/hNext - (y[i]-y[i-1])/hPrev)
		if k > 0 {
			sub[k-1] = hPrev
		}
		if k < interior-1 {
			super[k] = hNext
		}
	}

	solved, err := SolveTridiagonal(sub, diag, super, rhs)
	if err != nil {
		return nil, err
	}
	copy(m[1:n-1], solved)
	return m, nil
}
