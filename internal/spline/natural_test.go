package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/tphakala/go-trajectory-spline/internal/testutil"
)

const (
	// Test tolerances
	knotTolerance       = 1e-12
	continuityTolerance = 1e-9
	oracleTolerance     = 1e-9
)

var (
	peakTimes  = []float64{0, 1, 2}
	peakValues = []float64{0, 1, 0}

	unevenTimes  = []float64{0, 0.3, 1.1, 1.5, 2.7, 4.0}
	unevenValues = []float64{0.2, -0.4, 1.3, 0.9, -2.1, 0.5}
)

// TestFit_SymmetricPeak covers the three-point peak example.
func TestFit_SymmetricPeak(t *testing.T) {
	s, err := Fit(peakTimes, peakValues)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, s.Position(1), knotTolerance)
	assert.InDelta(t, 0.0, s.Velocity(1), knotTolerance, "symmetric peak has zero slope")
	assert.InDelta(t, 0.0, s.Acceleration(0), knotTolerance)
	assert.InDelta(t, 0.0, s.Acceleration(2), knotTolerance)
	assert.InDelta(t, -3.0, s.Acceleration(1), knotTolerance)
	assert.InDelta(t, 1.5, s.Velocity(0), knotTolerance)
}

// TestFit_Interpolates verifies the spline passes through every knot.
func TestFit_Interpolates(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	for i, tm := range unevenTimes {
		assert.InDelta(t, unevenValues[i], s.Position(tm), knotTolerance, "knot %d", i)
	}
}

// TestFit_Continuity verifies value, slope and curvature agree across
// every interior knot.
func TestFit_Continuity(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	for i := 1; i < len(unevenTimes)-1; i++ {
		tm := unevenTimes[i]
		for _, order := range []Order{Position, Velocity, Acceleration} {
			left := s.EvaluateSegment(i-1, tm, order)
			right := s.EvaluateSegment(i, tm, order)
			assert.InDelta(t, left, right, continuityTolerance,
				"%s discontinuous at knot %d", order, i)
		}
	}
}

// TestFit_NaturalBoundary verifies zero curvature at both ends.
func TestFit_NaturalBoundary(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	start, end := s.Domain()
	assert.InDelta(t, 0.0, s.Acceleration(start), knotTolerance)
	assert.InDelta(t, 0.0, s.Acceleration(end), continuityTolerance)
}

// TestFit_MatchesGonumNaturalCubic cross-checks against gonum's interp package.
func TestFit_MatchesGonumNaturalCubic(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	var ref interp.NaturalCubic
	require.NoError(t, ref.Fit(unevenTimes, unevenValues))

	for i := range 81 {
		tm := math.Min(float64(i)*0.05, 4.0)
		assert.InDelta(t, ref.Predict(tm), s.Position(tm), oracleTolerance, "position at %g", tm)
		assert.InDelta(t, ref.PredictDerivative(tm), s.Velocity(tm), oracleTolerance, "velocity at %g", tm)
	}
}

// TestFit_TwoKnotsIsLinear verifies the degenerate-but-valid two knot case.
func TestFit_TwoKnotsIsLinear(t *testing.T) {
	s, err := Fit([]float64{1, 3}, []float64{2, 6})
	require.NoError(t, err)

	assert.Equal(t, 1, s.NumSegments())
	assert.InDelta(t, 4.0, s.Position(2), knotTolerance)
	assert.InDelta(t, 2.0, s.Velocity(2), knotTolerance)
	assert.InDelta(t, 0.0, s.Acceleration(2), knotTolerance)
}

// TestFit_Errors verifies malformed knot sets are rejected.
func TestFit_Errors(t *testing.T) {
	tests := []struct {
		name   string
		times  []float64
		values []float64
	}{
		{"empty", nil, nil},
		{"single_knot", []float64{0}, []float64{1}},
		{"length_mismatch", []float64{0, 1}, []float64{1}},
		{"equal_times", []float64{0, 1, 1}, []float64{0, 1, 2}},
		{"decreasing_times", []float64{0, 2, 1}, []float64{0, 1, 2}},
		{"nan_time", []float64{0, math.NaN()}, []float64{0, 1}},
		{"inf_value", []float64{0, 1}, []float64{0, math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Fit(tt.times, tt.values)
			require.ErrorIs(t, err, ErrDegenerate)
			assert.Nil(t, s)
		})
	}
}

// TestFit_CopiesInput verifies later mutation of the inputs has no effect.
func TestFit_CopiesInput(t *testing.T) {
	times := []float64{0, 1, 2}
	values := []float64{0, 1, 0}
	s, err := Fit(times, values)
	require.NoError(t, err)

	times[1] = 5
	values[1] = 100
	assert.InDelta(t, 1.0, s.Position(1), knotTolerance)
	assert.Equal(t, []float64{0, 1, 2}, s.Knots())
}

func TestSegment(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	tests := []struct {
		tm   float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{0.1, 0},
		{0.3, 1},
		{1.2, 2},
		{2.7, 4},
		{4.0, 4},
		{99, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Segment(tt.tm), "t=%g", tt.tm)
	}
}

// TestEvaluate_Extrapolates verifies out-of-domain queries use the boundary
// polynomial rather than clamping the value.
func TestEvaluate_Extrapolates(t *testing.T) {
	s, err := Fit(peakTimes, peakValues)
	require.NoError(t, err)

	// Segment 0: y = 1.5t - 0.5t³
	assert.InDelta(t, 1.5*-1+0.5, s.Position(-1), knotTolerance)
	// Segment 1 at dx=2: 1 - 1.5·4 + 0.5·8
	assert.InDelta(t, -1.0, s.Position(3), knotTolerance)
}

func TestEvaluate_UnknownOrder(t *testing.T) {
	s, err := Fit(peakTimes, peakValues)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(s.Evaluate(0.5, Order(7))))
	assert.Equal(t, "Order(7)", Order(7).String())
}

func TestEvaluate_DenseSampleIsFinite(t *testing.T) {
	s, err := Fit(unevenTimes, unevenValues)
	require.NoError(t, err)

	samples := make([]float64, 0, 401)
	for i := range 401 {
		samples = append(samples, s.Position(float64(i)*0.01))
	}
	testutil.AssertNoNaNOrInf(t, samples)
}
