package mathutil

// Natural cubic spline system constants
const (
	splineDiagonalFactor = 2.0 // Main diagonal: 2(h[i-1] + h[i])
	splineRHSFactor      = 6.0 // Right-hand side: 6 × slope difference
)

// Cubic basis sizes and derivative factors
const (
	// CubicTerms is the number of coefficients in one cubic segment.
	CubicTerms = 4

	squareFactor = 2.0 // d/dx x² = 2x
	cubeFactor   = 3.0 // d/dx x³ = 3x²
	cubeFactor2  = 6.0 // d²/dx² x³ = 6x
)
