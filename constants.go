package trajectory

// Spline fitting limits
const (
	minTrajectoryPoints = 2 // A single point cannot define a slope
)

// Resampling constants
const (
	// MaxResamplePoints caps the number of samples Resample will generate.
	MaxResamplePoints = 1 << 24

	// gridSnapFraction is the fraction of a step within which the last grid
	// point is snapped onto the end time instead of appending a new sample.
	gridSnapFraction = 1e-9
)

// domainTolerance is the fraction of the spline span by which a time may
// fall outside the knot range and still be considered covered.
const domainTolerance = 1e-9
