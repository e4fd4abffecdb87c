// Package monitoring holds the diagnostic logger shared by the trajectory packages.
package monitoring

// Logf is the package-level diagnostic logger. It defaults to a no-op so
// library callers stay quiet; commands install log.Printf with SetLogger.
var Logf func(format string, v ...any) = noop

func noop(string, ...any) {}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = noop
		return
	}
	Logf = f
}
