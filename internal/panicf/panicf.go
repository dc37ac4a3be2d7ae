// Package panicf implements the engine's fatal-error policy (spec §7):
// configuration errors are returned, but invariant violations and
// device failures panic with a "file:line panic: <message>" message,
// mirroring sxt/base/error/panic.cc's baser::panic.
package panicf

import (
	"fmt"
	"runtime"
)

// Panic aborts the current goroutine with a message carrying the
// caller's file and line, matching the teacher's panic format.
func Panic(format string, args ...any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	panic(fmt.Sprintf("%s:%d panic: %s", file, line, fmt.Sprintf(format, args...)))
}

// Assert panics via Panic when cond is false. Used for release
// assertions that are cheap enough to always run (SXT_RELEASE_ASSERT),
// as opposed to debug-only assertions that a reimplementation could
// compile out.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file, line = "unknown", 0
		}
		panic(fmt.Sprintf("%s:%d panic: %s", file, line, fmt.Sprintf(format, args...)))
	}
}
