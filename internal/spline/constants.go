package spline

// MinKnots is the smallest knot count that defines a slope.
const MinKnots = 2

// Segment coefficient factors
const (
	coeffTwo = 2.0
	coeffSix = 6.0
)
