// Package except provides internal invariant checks and structured logging helpers shared by the
// path driver packages.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with a formatted message when pred is false. It guards invariants which indicate a
// programming error rather than bad input.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics when err is non-nil.
func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const (
	logDataKey = "data"
	logErrKey  = "err"
)

// LogDataAttrs groups attributes under a common data key.
func LogDataAttrs(attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = any(attr)
	}
	return slog.Group(logDataKey, args...)
}

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
