package trajectory

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrDegenerateInput indicates a trajectory that cannot be fit: fewer than
	// two points, non-increasing times, mismatched DOF counts or non-finite values.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrDomainMismatch indicates splines that do not match a trajectory:
	// wrong spline count or a point time outside the spline domain.
	ErrDomainMismatch = errors.New("domain mismatch")

	// ErrInvalidRange indicates bad resampling bounds or step.
	ErrInvalidRange = errors.New("invalid range")
)

// ErrorKind enumerates the failure classes reported by this package.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for nil or foreign errors.
	KindUnknown ErrorKind = iota
	// KindDegenerateInput corresponds to ErrDegenerateInput.
	KindDegenerateInput
	// KindDomainMismatch corresponds to ErrDomainMismatch.
	KindDomainMismatch
	// KindInvalidRange corresponds to ErrInvalidRange.
	KindInvalidRange
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindDegenerateInput:
		return "DegenerateInput"
	case KindDomainMismatch:
		return "DomainMismatch"
	case KindInvalidRange:
		return "InvalidRange"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// KindOf classifies err into one of the package error kinds.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrDegenerateInput):
		return KindDegenerateInput
	case errors.Is(err, ErrDomainMismatch):
		return KindDomainMismatch
	case errors.Is(err, ErrInvalidRange):
		return KindInvalidRange
	default:
		return KindUnknown
	}
}
