package errors

import (
	"fmt"
	"os"

	"github.com/LeviLovie/std-utils/log"
)

var (
	// errPrefix is a prefix string prepended to messages written by CheckErr and Exitf.
	errPrefix = "occurred error"

	// exitHook is called before the program exits due to an error.
	exitHook ExitHook

	osExit = os.Exit
)

// ExitHook defines the signature of a function that can be set as a hook to execute before
// program exit.
type ExitHook func(code int, msg string, tracer Tracer)

// SetErrPrefix allows changing the prefix string used in error messages.
func SetErrPrefix(prefix string) {
	errPrefix = prefix
}

// SetErrPrefixf allows setting the prefix string of CheckErr output with formatted arguments.
func SetErrPrefixf(s string, args ...any) {
	errPrefix = fmt.Sprintf(s, args...)
}

// SetExitHook sets a custom hook function to be called before the program exits due to an error.
func SetExitHook(hook ExitHook) {
	exitHook = hook
}

// SetExit replaces the function used to terminate the program, which is used in tests.
// A nil exit restores os.Exit.
func SetExit(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	osExit = exit
}

func prefixed(msg string) string {
	if errPrefix == "" {
		return msg
	}
	return errPrefix + ": " + msg
}

// Exit calls the exit hook (if set) and exits the program with the given code.
func Exit(code int) {
	if exitHook != nil {
		exitHook(code, "", GetTrace(3))
	}
	osExit(code)
}

// Exitf logs a formatted error message, calls the exit hook (if set),
// and then exits the program with the given code.
func Exitf(code int, format string, args ...any) {
	msg := prefixed(fmt.Sprintf(format, args...))
	log.Error(msg)
	if exitHook != nil {
		exitHook(code, msg, GetTrace(3))
	}
	osExit(code)
}

// CheckErr logs err with the set prefix and exits the program with code 1 if err
// is not nil.
func CheckErr(err error) {
	if err == nil {
		return
	}
	msg := prefixed(err.Error())
	log.Error(msg)
	if exitHook != nil {
		var tracer Tracer
		if e, ok := err.(*Error); ok {
			tracer = e.Trace()
		}
		if tracer == nil {
			tracer = GetTrace(3)
		}
		exitHook(1, msg, tracer)
	}
	osExit(1)
}
