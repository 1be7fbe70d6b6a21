//go:build !linux && !darwin

package logging

import "context"

// LogCoreDumpLimits is a no-op where RLIMIT_CORE is unavailable.
func LogCoreDumpLimits(context.Context) {}
