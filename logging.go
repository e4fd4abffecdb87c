package trajectory

import "github.com/tphakala/go-trajectory-spline/internal/monitoring"

// SetLogger installs a diagnostic logger for the package, for example
// log.Printf. Passing nil silences logging, which is the default.
func SetLogger(f func(format string, v ...any)) {
	monitoring.SetLogger(f)
}
