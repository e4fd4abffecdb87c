// Package spline implements natural cubic spline interpolation of one
// scalar signal sampled at strictly increasing times.
package spline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-trajectory-spline/internal/mathutil"
)

// ErrDegenerate is returned when a knot set cannot define a cubic spline.
var ErrDegenerate = errors.New("degenerate spline input")

// Order selects which derivative of the spline to evaluate.
type Order int

const (
	// Position evaluates the spline value.
	Position Order = iota
	// Velocity evaluates the first derivative.
	Velocity
	// Acceleration evaluates the second derivative.
	Acceleration
)

// String returns the name of the order.
func (o Order) String() string {
	switch o {
	case Position:
		return "position"
	case Velocity:
		return "velocity"
	case Acceleration:
		return "acceleration"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Natural is a natural cubic spline: C² continuous at interior knots with a
// zero second derivative at both end knots. It is immutable after Fit and
// safe for concurrent evaluation.
type Natural struct {
	knots []float64
	// coeffs[i] holds [a, b, c, d] for segment i:
	// y(t) = a + b·dx + c·dx² + d·dx³, dx = t - knots[i]
	coeffs [][mathutil.CubicTerms]float64
}

// Fit builds the natural cubic spline through (times[i], values[i]).
// The input slices are copied.
func Fit(times, values []float64) (*Natural, error) {
	if err := validateKnots(times, values); err != nil {
		return nil, err
	}

	m, err := mathutil.NaturalSplineSecondDerivatives(times, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	n := len(times)
	s := &Natural{
		knots:  append([]float64(nil), times...),
		coeffs: make([][mathutil.CubicTerms]float64, n-1),
	}
	for i := range n - 1 {
		h := times[i+1] - times[i]
		s.coeffs[i] = [mathutil.CubicTerms]float64{
			values[i],
			(values[i+1]-values[i])/h - h*(coeffTwo*m[i]+m[i+1])/coeffSix,
			m[i] / coeffTwo,
			(m[i+1] - m[i]) / (coeffSix * h),
		}
	}
	return s, nil
}

// validateKnots checks count, ordering and finiteness of the knot set.
func validateKnots(times, values []float64) error {
	if len(times) != len(values) {
		return fmt.Errorf("%w: %d times but %d values", ErrDegenerate, len(times), len(values))
	}
	if len(times) < MinKnots {
		return fmt.Errorf("%w: need at least %d knots, got %d", ErrDegenerate, MinKnots, len(times))
	}
	if floats.HasNaN(times) || floats.HasNaN(values) {
		return fmt.Errorf("%w: NaN in knots", ErrDegenerate)
	}
	for i, t := range times {
		if math.IsInf(t, 0) || math.IsInf(values[i], 0) {
			return fmt.Errorf("%w: infinite knot at index %d", ErrDegenerate, i)
		}
		if i > 0 && t <= times[i-1] {
			return fmt.Errorf("%w: times not strictly increasing at index %d (%g <= %g)",
				ErrDegenerate, i, t, times[i-1])
		}
	}
	return nil
}

// Knots returns a copy of the knot times.
func (s *Natural) Knots() []float64 {
	return append([]float64(nil), s.knots...)
}

// NumSegments returns the number of cubic segments (knots - 1).
func (s *Natural) NumSegments() int {
	return len(s.coeffs)
}

// Domain returns the first and last knot times.
func (s *Natural) Domain() (start, end float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}

// Segment returns the index i of the segment with knots[i] <= t <= knots[i+1].
// Times before the first knot map to segment 0 and times after the last knot
// map to the final segment, so evaluation there extrapolates the boundary
// polynomial.
func (s *Natural) Segment(t float64) int {
	// First knot strictly greater than t.
	idx := sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > t })
	seg := idx - 1
	if seg < 0 {
		return 0
	}
	if last := len(s.coeffs) - 1; seg > last {
		return last
	}
	return seg
}

// Evaluate returns the requested derivative at time t. Unknown orders
// yield NaN.
func (s *Natural) Evaluate(t float64, order Order) float64 {
	return s.EvaluateSegment(s.Segment(t), t, order)
}

// EvaluateSegment evaluates the polynomial of segment seg at time t,
// regardless of whether t lies inside that segment.
func (s *Natural) EvaluateSegment(seg int, t float64, order Order) float64 {
	var basis [mathutil.CubicTerms]float64
	dx := t - s.knots[seg]
	switch order {
	case Position:
		mathutil.PositionBasis(&basis, dx)
	case Velocity:
		mathutil.VelocityBasis(&basis, dx)
	case Acceleration:
		mathutil.AccelerationBasis(&basis, dx)
	default:
		return math.NaN()
	}
	return f64.DotProduct(s.coeffs[seg][:], basis[:])
}

// Position returns the spline value at t.
func (s *Natural) Position(t float64) float64 { return s.Evaluate(t, Position) }

// Velocity returns the first derivative at t.
func (s *Natural) Velocity(t float64) float64 { return s.Evaluate(t, Velocity) }

// Acceleration returns the second derivative at t.
func (s *Natural) Acceleration(t float64) float64 { return s.Evaluate(t, Acceleration) }
