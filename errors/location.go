package errors

import (
	"fmt"
	"runtime"
)

// Location is a point in the source code.
//
// The Go runtime reports file and line only, so locations captured by Caller always
// have Column 0. Callers that know the exact column build the Location themselves and
// pass it to WithContextAt or WithLocationAt.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%s@%d:%d", l.File, l.Line, l.Column)
}

// Caller returns the location of the call expression skip frames up the stack of the
// function calling Caller. Caller(0) is the line that calls Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: file, Line: line}
}

// contextLayer wraps err with a layer naming ctx and loc.
func contextLayer(err error, loc Location, ctx any) *Error {
	return &Error{msg: fmt.Sprintf("%+v at '%s'", ctx, loc), cause: err}
}

// locationLayer wraps err with a layer naming loc only.
func locationLayer(err error, loc Location) *Error {
	return &Error{msg: fmt.Sprintf("at '%s'", loc), cause: err}
}
