package errors

import (
	stderr "errors"
	"fmt"
	"io"
	"runtime"
)

// Is reports whether any error in err's tree matches target.
var Is = stderr.Is

// As finds the first error in err's tree that matches target and sets target to it.
var As = stderr.As

// Join returns an error wrapping the given non-nil errors.
var Join = stderr.Join

// Unwrap returns the error err wraps, or nil.
var Unwrap = stderr.Unwrap

// noneText is the rendering of an error synthesized from an empty Option.
const noneText = "Option is None"

// ErrNone reports that an Option held no value. Every error synthesized from an
// empty Option matches it with Is, whatever message it renders.
var ErrNone = stderr.New(noneText)

type errString string

func (e errString) Error() string {
	return string(e)
}

// Error is the canonical error. A layer carries its own message and the error it was
// built on; it never changes after construction and adding context produces a new
// layer.
type Error struct {
	msg    string
	cause  error
	bare   bool // no message of its own, renders as its cause
	absent bool
	trace  Tracer
}

// Error renders the chain outermost-first joined by ": ". Every message layer joins,
// an empty message included.
func (e *Error) Error() string {
	switch {
	case e.cause == nil:
		return e.msg
	case e.bare:
		return e.cause.Error()
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

// Message returns the text of this layer only.
func (e *Error) Message() string {
	return e.msg
}

// Cause returns the error this layer wraps, or nil for a root.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	return e.absent && target == ErrNone
}

// Trace returns the stack captured by the innermost layer that has one.
func (e *Error) Trace() Tracer {
	var tracer Tracer
	for err := error(e); err != nil; err = stderr.Unwrap(err) {
		if ie, ok := err.(*Error); ok && ie.trace != nil {
			tracer = ie.trace
		}
	}
	return tracer
}

func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(f, e.Error())
		if !f.Flag('+') {
			return
		}
		if tracer := e.Trace(); tracer != nil {
			_, _ = io.WriteString(f, "\nTrace:\n")
			tracer.RangeFrames(func(frame runtime.Frame) {
				_, _ = fmt.Fprintf(f, "    %s(...)\n", frame.Function)
				_, _ = fmt.Fprintf(f, "         %s:%d\n", frame.File, frame.Line)
			})
		}
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

var _ error = (*Error)(nil)
var _ fmt.Formatter = (*Error)(nil)

// wrap builds a layer and captures the stack starting skip frames above the
// caller of wrap.
func wrap(msg string, cause error, skip int) *Error {
	return &Error{msg: msg, cause: cause, trace: GetTrace(skip + 3)}
}

// passThrough builds a layer without a message of its own around cause.
func passThrough(cause error, skip int) *Error {
	e := wrap("", cause, skip+1)
	e.bare = true
	return e
}

// Newf formats according to a format specifier and returns a root error. Error
// arguments wrapped with %w stay reachable through Is and As.
func Newf(format string, a ...any) error {
	return passThrough(fmt.Errorf(format, a...), 1)
}

// New returns a root error rendering text.
func New(text string) error {
	return wrap(text, nil, 1)
}

// Chain returns err and every error beneath it, outermost first.
func Chain(err error) []error {
	var chain []error
	for ; err != nil; err = stderr.Unwrap(err) {
		chain = append(chain, err)
	}
	return chain
}

// Root returns the innermost error of the chain, or nil when err is nil.
func Root(err error) error {
	for err != nil {
		next := stderr.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
