package mathutil

// PositionBasis fills dst with the monomial basis [1, dx, dx², dx³] so that
// a cubic with coefficients c evaluates as the dot product c·dst.
func PositionBasis(dst *[CubicTerms]float64, dx float64) {
	dst[0] = 1
	dst[1] = dx
	dst[2] = dx * dx
	dst[3] = dx * dx * dx
}

// VelocityBasis fills dst with the first derivative of the monomial basis:
// [0, 1, 2dx, 3dx²].
func VelocityBasis(dst *[CubicTerms]float64, dx float64) {
	dst[0] = 0
	dst[1] = 1
	dst[2] = squareFactor * dx
	dst[3] = cubeFactor * dx * dx
}

// AccelerationBasis fills dst with the second derivative of the monomial
// basis: [0, 0, 2, 6dx].
func AccelerationBasis(dst *[CubicTerms]float64, dx float64) {
	dst[0] = 0
	dst[1] = 0
	dst[2] = squareFactor
	dst[3] = cubeFactor2 * dx
}
