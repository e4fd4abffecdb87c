package trajectory

import (
	"fmt"

	"github.com/tphakala/go-trajectory-spline/internal/spline"
)

// Order selects position, velocity or acceleration when evaluating splines.
type Order = spline.Order

// Evaluation orders.
const (
	Position     = spline.Position
	Velocity     = spline.Velocity
	Acceleration = spline.Acceleration
)

// Spline is a natural cubic spline for a single joint.
type Spline = spline.Natural

// NewSpline fits a natural cubic spline through (times[i], values[i]).
// Times must be strictly increasing and there must be at least two knots.
func NewSpline(times, values []float64) (*Spline, error) {
	s, err := spline.Fit(times, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}
	return s, nil
}

// SplineSet holds one spline per DOF, all sharing the same knot times.
type SplineSet struct {
	knots   []float64
	splines []*Spline
}

// FitSplines validates traj and fits one natural cubic spline per DOF.
func FitSplines(traj Trajectory) (*SplineSet, error) {
	if err := traj.Validate(); err != nil {
		return nil, err
	}

	times := traj.Times()
	dof := traj.DOF()
	splines := make([]*Spline, dof)
	for j := range dof {
		s, err := spline.Fit(times, traj.Joint(j))
		if err != nil {
			return nil, fmt.Errorf("%w: joint %d: %w", ErrDegenerateInput, j, err)
		}
		splines[j] = s
	}

	return &SplineSet{knots: times, splines: splines}, nil
}

// Len returns the number of splines, which equals the fitted DOF count.
func (s *SplineSet) Len() int {
	return len(s.splines)
}

// Spline returns the spline for joint dof.
func (s *SplineSet) Spline(dof int) *Spline {
	return s.splines[dof]
}

// Knots returns a copy of the shared knot times.
func (s *SplineSet) Knots() []float64 {
	return append([]float64(nil), s.knots...)
}

// Domain returns the first and last knot times.
func (s *SplineSet) Domain() (start, end float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}

// Covers reports whether t lies within the spline domain, allowing a small
// relative tolerance for floating point noise.
func (s *SplineSet) Covers(t float64) bool {
	start, end := s.Domain()
	slack := (end - start) * domainTolerance
	return t >= start-slack && t <= end+slack
}

// Evaluate writes the requested derivative of every joint at time t into
// dst, growing it if needed, and returns it. Unknown orders produce NaN.
func (s *SplineSet) Evaluate(t float64, order Order, dst []float64) []float64 {
	if cap(dst) < len(s.splines) {
		dst = make([]float64, len(s.splines))
	}
	dst = dst[:len(s.splines)]

	if len(s.splines) == 0 {
		return dst
	}
	// All splines share knots, so the segment search runs once.
	seg := s.splines[0].Segment(t)
	for j, sp := range s.splines {
		dst[j] = sp.EvaluateSegment(seg, t, order)
	}
	return dst
}

// PointAt evaluates positions, velocities and accelerations of every joint at t.
func (s *SplineSet) PointAt(t float64) Point {
	return Point{
		Positions:     s.Evaluate(t, Position, nil),
		Velocities:    s.Evaluate(t, Velocity, nil),
		Accelerations: s.Evaluate(t, Acceleration, nil),
		TimeFromStart: t,
	}
}
