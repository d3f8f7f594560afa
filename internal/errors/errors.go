// Package errors is the single import for error handling: stdlib matching
// plus pkg/errors stack annotation.
package errors

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// New creates a sentinel without a stack; wrap it at the failure site instead.
func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// AsType finds the first error in err's chain assignable to T.
func AsType[T error](err error) (T, bool) {
	var target T

	return target, stderrors.As(err, &target)
}

// Errorf formats a new error carrying the caller's stack.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// WithStack records the caller's stack on err. A nil err stays nil.
func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Wrap prefixes err with message and records the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// facadeFile is this file; its frames sit on top of every stack recorded
// through the helpers above.
var facadeFile = func() string {
	_, file, _, _ := runtime.Caller(0)

	return file
}()

// Origin names the frame where the innermost stack-carrying error in err's
// chain was created, formatted as "func file:line". Frames of this package's
// helpers are skipped. It is empty when no error in the chain carries a stack.
func Origin(err error) string {
	var origin string
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		st, ok := e.(stackTracer)
		if !ok {
			continue
		}
		if frame, ok := callerFrame(st.StackTrace()); ok {
			origin = fmt.Sprintf("%s %s:%d", shortFuncName(frame.Function), filepath.Base(frame.File), frame.Line)
		}
	}

	return origin
}

// callerFrame expands trace, inlined calls included, and returns the first
// frame outside this file.
func callerFrame(trace pkgerrors.StackTrace) (runtime.Frame, bool) {
	if len(trace) == 0 {
		return runtime.Frame{}, false
	}

	pcs := make([]uintptr, len(trace))
	for i, f := range trace {
		pcs[i] = uintptr(f)
	}

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && frame.File != facadeFile {
			return frame, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

// shortFuncName drops the import path and package name: "a/b/pkg.(*T).M" becomes "(*T).M".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return name
}
