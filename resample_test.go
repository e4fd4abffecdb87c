package trajectory

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-trajectory-spline/internal/monitoring"
	"github.com/tphakala/go-trajectory-spline/internal/testutil"
)

func TestResample_PeakExample(t *testing.T) {
	set, err := FitSplines(peakTrajectory())
	require.NoError(t, err)

	got, err := Resample(set, 0, 2, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, got.Times())
	for _, p := range got {
		assert.Len(t, p.Positions, 1)
		assert.Len(t, p.Velocities, 1)
		assert.Len(t, p.Accelerations, 1)
	}
	assert.InDelta(t, 1.0, got[2].Positions[0], testutil.KnotTolerance)
	assert.InDelta(t, 0.0, got[2].Velocities[0], testutil.KnotTolerance)
	// Symmetric about the peak.
	assert.InDelta(t, got[1].Positions[0], got[3].Positions[0], testutil.KnotTolerance)
}

func TestResample_GridProperties(t *testing.T) {
	set, err := FitSplines(armTrajectory())
	require.NoError(t, err)

	tests := []struct {
		name             string
		start, end, step float64
		wantPoints       int
	}{
		{"exact_multiple", 0, 3.5, 0.5, 8},
		{"partial_last_interval", 0, 3.5, 0.4, 10},
		{"inexact_decimal_step", 0.5, 2.0, 0.1, 16},
		{"step_larger_than_range", 1, 1.2, 5, 2},
		{"fine_grid", 0, 3.5, 0.001, 3501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resample(set, tt.start, tt.end, tt.step)
			require.NoError(t, err)

			times := got.Times()
			assert.Len(t, times, tt.wantPoints)
			assert.Equal(t, tt.start, times[0], "first time is start")
			assert.Equal(t, tt.end, times[len(times)-1], "last time is exactly end")
			testutil.AssertStrictlyIncreasing(t, times)
			testutil.AssertAllInRange(t, times, tt.start, tt.end)
		})
	}
}

// TestResample_RoundTrip resamples at the original spacing and checks the
// original positions are reproduced.
func TestResample_RoundTrip(t *testing.T) {
	traj := Trajectory{
		{Positions: []float64{0, 2}, TimeFromStart: 0},
		{Positions: []float64{1, 1.5}, TimeFromStart: 0.25},
		{Positions: []float64{0.5, -1}, TimeFromStart: 0.5},
		{Positions: []float64{-0.2, 0}, TimeFromStart: 0.75},
		{Positions: []float64{0.3, 0.4}, TimeFromStart: 1},
	}
	set, err := FitSplines(traj)
	require.NoError(t, err)

	got, err := Resample(set, 0, 1, 0.25)
	require.NoError(t, err)

	strip := cmpopts.IgnoreFields(Point{}, "Velocities", "Accelerations")
	if diff := cmp.Diff(traj, got, strip, cmpopts.EquateApprox(0, testutil.KnotTolerance)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Refitting the resampled positions gives back the same splines.
	refit, err := FitSplines(got)
	require.NoError(t, err)
	for _, tm := range []float64{0.1, 0.4, 0.9} {
		testutil.AssertSlicesInDelta(t,
			set.Evaluate(tm, Position, nil), refit.Evaluate(tm, Position, nil), testutil.DefaultTolerance)
	}
}

func TestResample_DerivativesConsistent(t *testing.T) {
	set, err := FitSplines(armTrajectory())
	require.NoError(t, err)

	got, err := Resample(set, 0, 3.5, 0.05)
	require.NoError(t, err)
	for _, p := range got {
		assert.Equal(t, set.Evaluate(p.TimeFromStart, Acceleration, nil), p.Accelerations)
		testutil.AssertNoNaNOrInf(t, p.Velocities)
	}
	testutil.AssertSlicesInDelta(t, []float64{0, 0, 0}, got[0].Accelerations, testutil.KnotTolerance)
	testutil.AssertSlicesInDelta(t, []float64{0, 0, 0}, got[len(got)-1].Accelerations, testutil.DefaultTolerance)
}

func TestResample_Errors(t *testing.T) {
	set, err := FitSplines(armTrajectory())
	require.NoError(t, err)

	tests := []struct {
		name             string
		splines          *SplineSet
		start, end, step float64
		kind             ErrorKind
	}{
		{"nil_splines", nil, 0, 1, 0.1, KindDomainMismatch},
		{"start_equals_end", set, 1, 1, 0.1, KindInvalidRange},
		{"start_after_end", set, 2, 1, 0.1, KindInvalidRange},
		{"zero_step", set, 0, 1, 0, KindInvalidRange},
		{"negative_step", set, 0, 1, -0.1, KindInvalidRange},
		{"nan_step", set, 0, 1, math.NaN(), KindInvalidRange},
		{"inf_end", set, 0, math.Inf(1), 0.1, KindInvalidRange},
		{"start_before_domain", set, -1, 1, 0.1, KindInvalidRange},
		{"end_after_domain", set, 0, 4, 0.1, KindInvalidRange},
		{"too_many_points", set, 0, 3.5, 1e-9, KindInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resample(tt.splines, tt.start, tt.end, tt.step)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), "error: %v", err)
			assert.Nil(t, got)
		})
	}
}

func TestResampleConfig_SampleTimes(t *testing.T) {
	tests := []struct {
		name string
		cfg  ResampleConfig
		want []float64
	}{
		{"exact", ResampleConfig{Start: 0, End: 2, Step: 0.5}, []float64{0, 0.5, 1, 1.5, 2}},
		{"append_end", ResampleConfig{Start: 0, End: 1, Step: 0.4}, []float64{0, 0.4, 0.8, 1}},
		{"offset_start", ResampleConfig{Start: 1, End: 2, Step: 0.5}, []float64{1, 1.5, 2}},
		{"single_interval", ResampleConfig{Start: 0, End: 1, Step: 3}, []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.cfg.Validate())
			testutil.AssertSlicesInDelta(t, tt.want, tt.cfg.SampleTimes(), testutil.KnotTolerance)
		})
	}
}

func TestResampleConfig_SampleTimes_SnapsNearMultiple(t *testing.T) {
	// 0.3/0.1 is 2.9999999999999996 in floating point.
	cfg := ResampleConfig{Start: 0, End: 0.3, Step: 0.1}
	times := cfg.SampleTimes()
	assert.Len(t, times, 4)
	assert.Equal(t, 0.3, times[3])
}

func TestResample_LogsPartialInterval(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()

	var calls int
	SetLogger(func(string, ...any) { calls++ })

	set, err := FitSplines(peakTrajectory())
	require.NoError(t, err)

	_, err = Resample(set, 0, 2, 0.5)
	require.NoError(t, err)
	assert.Zero(t, calls)

	_, err = Resample(set, 0, 2, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestResampleWithConfig(t *testing.T) {
	set, err := FitSplines(peakTrajectory())
	require.NoError(t, err)

	a, err := ResampleWithConfig(set, ResampleConfig{Start: 0, End: 2, Step: 0.25})
	require.NoError(t, err)
	b, err := Resample(set, 0, 2, 0.25)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
