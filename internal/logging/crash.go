package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack, then re-panics.
// It must be deferred directly:
//
//	defer logging.RecoverPanic(ctx)
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Str("stack", string(debug.Stack())).
		Msg("panic")

	panic(r)
}
