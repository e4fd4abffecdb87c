package trajectory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is one instant of a joint trajectory.
type Point struct {
	// Positions holds one value per DOF, in joint order.
	Positions []float64

	// Velocities is nil when absent; otherwise it has len(Positions) entries.
	Velocities []float64

	// Accelerations is nil when absent; otherwise it has len(Positions) entries.
	Accelerations []float64

	// TimeFromStart is the sample time in seconds.
	TimeFromStart float64
}

// Clone returns a deep copy of the point.
func (p Point) Clone() Point {
	return Point{
		Positions:     cloneFloats(p.Positions),
		Velocities:    cloneFloats(p.Velocities),
		Accelerations: cloneFloats(p.Accelerations),
		TimeFromStart: p.TimeFromStart,
	}
}

// Trajectory is an ordered sequence of points with strictly increasing times.
type Trajectory []Point

// DOF returns the number of joints, taken from the first point.
// An empty trajectory has zero DOF.
func (t Trajectory) DOF() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0].Positions)
}

// Times returns the time of every point in order.
func (t Trajectory) Times() []float64 {
	times := make([]float64, len(t))
	for i := range t {
		times[i] = t[i].TimeFromStart
	}
	return times
}

// Joint returns the position of joint dof at every point.
func (t Trajectory) Joint(dof int) []float64 {
	values := make([]float64, len(t))
	for i := range t {
		values[i] = t[i].Positions[dof]
	}
	return values
}

// Clone returns a deep copy of the trajectory.
func (t Trajectory) Clone() Trajectory {
	if t == nil {
		return nil
	}
	out := make(Trajectory, len(t))
	for i := range t {
		out[i] = t[i].Clone()
	}
	return out
}

// Validate checks the invariants spline fitting relies on: at least two
// points, equal DOF on every point, finite values and strictly increasing
// times.
func (t Trajectory) Validate() error {
	if len(t) < minTrajectoryPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrDegenerateInput, minTrajectoryPoints, len(t))
	}
	return t.validateShape()
}

// validateShape checks DOF consistency, finiteness and time ordering without
// a minimum length.
func (t Trajectory) validateShape() error {
	dof := t.DOF()
	if dof == 0 {
		return fmt.Errorf("%w: points have no positions", ErrDegenerateInput)
	}
	for i := range t {
		p := &t[i]
		if len(p.Positions) != dof {
			return fmt.Errorf("%w: point %d has %d positions, expected %d",
				ErrDegenerateInput, i, len(p.Positions), dof)
		}
		if math.IsNaN(p.TimeFromStart) || math.IsInf(p.TimeFromStart, 0) {
			return fmt.Errorf("%w: point %d has non-finite time", ErrDegenerateInput, i)
		}
		if floats.HasNaN(p.Positions) {
			return fmt.Errorf("%w: point %d has NaN position", ErrDegenerateInput, i)
		}
		if i > 0 && p.TimeFromStart <= t[i-1].TimeFromStart {
			return fmt.Errorf("%w: time not strictly increasing at point %d (%g <= %g)",
				ErrDegenerateInput, i, p.TimeFromStart, t[i-1].TimeFromStart)
		}
	}
	return nil
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s...)
}
