package trajectory

import (
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory-spline/internal/monitoring"
)

// ResampleConfig holds uniform resampling parameters.
type ResampleConfig struct {
	// Start is the time of the first generated sample.
	Start float64

	// End is the time of the last generated sample. Must be > Start.
	End float64

	// Step is the spacing between samples. Must be > 0. The final interval
	// is shorter when End-Start is not a multiple of Step.
	Step float64
}

// Validate checks the bounds and step in isolation, without reference to a
// spline domain.
func (c ResampleConfig) Validate() error {
	if math.IsNaN(c.Start) || math.IsNaN(c.End) || math.IsNaN(c.Step) ||
		math.IsInf(c.Start, 0) || math.IsInf(c.End, 0) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("%w: bounds and step must be finite", ErrInvalidRange)
	}
	if c.Start >= c.End {
		return fmt.Errorf("%w: start %g must be before end %g", ErrInvalidRange, c.Start, c.End)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidRange, c.Step)
	}
	if n := (c.End - c.Start) / c.Step; n >= MaxResamplePoints {
		return fmt.Errorf("%w: step %g yields more than %d samples", ErrInvalidRange, c.Step, MaxResamplePoints)
	}
	return nil
}

// SampleTimes returns the resampling grid: Start + i·Step for every grid
// point not past End, with the final sample placed exactly on End.
// The config must be valid.
func (c ResampleConfig) SampleTimes() []float64 {
	intervals := math.Floor((c.End-c.Start)/c.Step + gridSnapFraction)
	n := int(intervals)

	times := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		times = append(times, c.Start+float64(i)*c.Step)
	}

	last := len(times) - 1
	if c.End-times[last] <= c.Step*gridSnapFraction {
		times[last] = c.End
	} else {
		times = append(times, c.End)
		monitoring.Logf("resample: partial final interval %g appended at end time %g",
			c.End-times[last], c.End)
	}
	return times
}

// Resample evaluates every spline on a uniform grid from start to end and
// returns the new trajectory. Each point carries positions, velocities and
// accelerations. start and end must lie within the spline domain.
func Resample(splines *SplineSet, start, end, step float64) (Trajectory, error) {
	return ResampleWithConfig(splines, ResampleConfig{Start: start, End: end, Step: step})
}

// ResampleWithConfig is Resample with parameters taken from cfg.
func ResampleWithConfig(splines *SplineSet, cfg ResampleConfig) (Trajectory, error) {
	if splines == nil || splines.Len() == 0 {
		return nil, fmt.Errorf("%w: empty spline set", ErrDomainMismatch)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !splines.Covers(cfg.Start) || !splines.Covers(cfg.End) {
		lo, hi := splines.Domain()
		return nil, fmt.Errorf("%w: [%g, %g] outside spline domain [%g, %g]",
			ErrInvalidRange, cfg.Start, cfg.End, lo, hi)
	}

	times := cfg.SampleTimes()
	out := make(Trajectory, len(times))
	for i, t := range times {
		out[i] = splines.PointAt(t)
	}
	return out, nil
}
