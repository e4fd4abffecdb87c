package trajectory

import (
	"fmt"
)

// ProjectDerivatives fits splines to traj and returns a copy of traj whose
// velocities and accelerations are the spline derivatives at each point's
// own time. traj is not modified.
func ProjectDerivatives(traj Trajectory) (Trajectory, error) {
	splines, err := FitSplines(traj)
	if err != nil {
		return nil, err
	}
	return ProjectDerivativesFromSplines(splines, traj)
}

// ProjectDerivativesFromSplines returns a copy of traj whose velocities and
// accelerations are evaluated from the caller-supplied splines. The spline
// count must equal the DOF count and every point time must lie inside the
// spline domain. Existing velocity and acceleration values are overwritten
// in the copy; traj itself is not modified.
func ProjectDerivativesFromSplines(splines *SplineSet, traj Trajectory) (Trajectory, error) {
	if splines == nil {
		return nil, fmt.Errorf("%w: nil spline set", ErrDomainMismatch)
	}
	if len(traj) == 0 {
		return nil, fmt.Errorf("%w: empty trajectory", ErrDegenerateInput)
	}
	if err := traj.validateShape(); err != nil {
		return nil, err
	}
	if dof := traj.DOF(); splines.Len() != dof {
		return nil, fmt.Errorf("%w: %d splines for %d DOF", ErrDomainMismatch, splines.Len(), dof)
	}
	for i := range traj {
		if tm := traj[i].TimeFromStart; !splines.Covers(tm) {
			start, end := splines.Domain()
			return nil, fmt.Errorf("%w: point %d time %g outside spline domain [%g, %g]",
				ErrDomainMismatch, i, tm, start, end)
		}
	}

	// Everything is validated; build the result.
	out := traj.Clone()
	for i := range out {
		p := &out[i]
		p.Velocities = splines.Evaluate(p.TimeFromStart, Velocity, p.Velocities)
		p.Accelerations = splines.Evaluate(p.TimeFromStart, Acceleration, p.Accelerations)
	}
	return out, nil
}
