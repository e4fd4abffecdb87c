// Package trajectory computes smooth motion profiles for multi-joint robot
// trajectories using natural cubic splines.
//
// A [Trajectory] is an ordered sequence of [Point] values, each holding one
// position per joint (degree of freedom, DOF) and a time from start. Fitting
// a trajectory produces one natural cubic spline per DOF. The splines are C²
// continuous and have zero second derivative at both ends, so positions,
// velocities and accelerations derived from them are mutually consistent.
//
// # Quick Start
//
// Fill in velocities and accelerations at the original sample times:
//
//	traj := trajectory.Trajectory{
//	    {Positions: []float64{0, 0.5}, TimeFromStart: 0},
//	    {Positions: []float64{1, 0.7}, TimeFromStart: 1},
//	    {Positions: []float64{0, 0.2}, TimeFromStart: 2},
//	}
//	annotated, err := trajectory.ProjectDerivatives(traj)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Resample onto a uniform time grid:
//
//	splines, err := trajectory.FitSplines(traj)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dense, err := trajectory.Resample(splines, 0, 2, 0.01)
//
// # Result Semantics
//
// No operation mutates its input. [ProjectDerivatives],
// [ProjectDerivativesFromSplines] and [Resample] return a freshly built
// trajectory on success and nil on failure, so the caller decides whether to
// replace an existing trajectory.
//
// # Errors
//
// Failures wrap one of three sentinel errors: [ErrDegenerateInput],
// [ErrDomainMismatch] or [ErrInvalidRange]. Use [errors.Is] or [KindOf] to
// tell them apart.
//
// # Resampling Grid
//
// [Resample] generates times start, start+step, start+2·step, ... computed by
// multiplication rather than accumulation. The final sample always lands
// exactly on end: a grid point within a tiny fraction of a step from end is
// snapped to it, otherwise end is appended as a final, shorter interval.
//
// # Thread Safety
//
// A [SplineSet] is immutable after [FitSplines] and may be evaluated from any
// number of goroutines. Trajectories are plain slices; callers must serialize
// writes to a trajectory they share.
package trajectory
