package errors

import (
	stderr "errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LeviLovie/std-utils/log"
)

// mockLogger records the rendered message of every call.
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Trace(args ...any)                 { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Debug(args ...any)                 { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Info(args ...any)                  { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Warn(args ...any)                  { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Error(args ...any)                 { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Fatal(args ...any)                 { m.Called(fmt.Sprint(args...)) }
func (m *mockLogger) Tracef(format string, args ...any) { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) Debugf(format string, args ...any) { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) Infof(format string, args ...any)  { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) Warnf(format string, args ...any)  { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) Errorf(format string, args ...any) { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) Fatalf(format string, args ...any) { m.Called(fmt.Sprintf(format, args...)) }
func (m *mockLogger) SetLevel(lv log.Level)             { m.Called(lv) }
func (m *mockLogger) SetOutput(w io.Writer)             { m.Called(w) }

var _ log.Logger = (*mockLogger)(nil)

// withMockLogger installs a mockLogger as the default logger until the test ends.
func withMockLogger(t *testing.T) *mockLogger {
	t.Helper()
	m := new(mockLogger)
	m.Test(t)
	origin := log.DefaultLogger()
	log.SetLogger(m)
	t.Cleanup(func() {
		log.SetLogger(origin)
		m.AssertExpectations(t)
	})
	return m
}

func hasPrefix(prefix string) any {
	return mock.MatchedBy(func(s string) bool { return strings.HasPrefix(s, prefix) })
}

func TestResultLog(t *testing.T) {
	logger := withMockLogger(t)

	require.Equal(t, Ok(1), Ok(1).Log())
	logger.AssertNotCalled(t, "Errorf", mock.Anything)

	logger.On("Errorf", hasPrefix("error\nTrace:\n")).Once()
	err := New("error")
	result := Fail[int](err).Log()
	require.Same(t, err, result.Err())
}

func TestResultLogMsg(t *testing.T) {
	logger := withMockLogger(t)

	require.Equal(t, Ok(1), Ok(1).LogMsg("test"))
	logger.AssertNotCalled(t, "Errorf", mock.Anything)

	logger.On("Errorf", hasPrefix("test: error")).Once()
	result := Fail[int](New("error")).LogMsg("test")
	require.Equal(t, "error", result.Err().Error())

	logger.On("Errorf", "plain: cause").Once()
	result = Fail[int](stderr.New("cause")).LogMsg("plain")
	require.Equal(t, "cause", result.Err().Error())
}

func TestResultLogMsgWritesRecord(t *testing.T) {
	buf := captureLog(t)
	result := Fail[int](New("error")).LogMsg("test")
	require.Equal(t, "error", result.Err().Error())
	message := loggedMessage(t, buf)
	require.True(t, strings.HasPrefix(message, "test: error"))
	require.Contains(t, message, "TestResultLogMsgWritesRecord")
}

func TestOptionLog(t *testing.T) {
	logger := withMockLogger(t)

	require.Equal(t, Ok(1), Some(1).Log())
	require.Equal(t, Ok(1), Some(1).LogMsg("test"))
	logger.AssertNotCalled(t, "Error", mock.Anything)

	logger.On("Error", "Option is None").Once()
	result := None[int]().Log()
	require.Equal(t, "Option is None", result.Err().Error())
	require.ErrorIs(t, result.Err(), ErrNone)

	logger.On("Error", "test").Once()
	result = None[int]().LogMsg("test")
	require.Equal(t, "test", result.Err().Error())
	require.ErrorIs(t, result.Err(), ErrNone)
}

type request struct {
	ID   int
	Path string
}

func TestResultWithContext(t *testing.T) {
	require.Equal(t, Ok(1), Ok(1).WithContext("ctx"))

	cases := []struct {
		name   string
		ctx    any
		render string
	}{
		{"string", "load config", "load config"},
		{"integer", 42, "42"},
		{"struct", request{ID: 7, Path: "/a"}, "{ID:7 Path:/a}"},
		{"pointer", &request{ID: 1}, "&{ID:1 Path:}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, loc := Fail[int](New("error")).WithContext(c.ctx), Caller(0)
			expect := fmt.Sprintf("%s at '%s'", c.render, loc)
			require.Equal(t, expect+": error", result.Err().Error())
			require.Equal(t, expect, result.Err().(*Error).Message())
			require.Equal(t, "error", Root(result.Err()).Error())
		})
	}
}

func TestContextIsFormattedEagerly(t *testing.T) {
	ctx := &request{ID: 1}
	result := Fail[int](New("error")).WithContext(ctx)
	before := result.Err().Error()
	ctx.ID = 2
	require.Equal(t, before, result.Err().Error())
}

func TestCallerLocation(t *testing.T) {
	loc, line := Caller(0), currentLine()
	require.Equal(t, line, loc.Line)
	require.True(t, strings.HasSuffix(loc.File, "annotate_test.go"))
	require.Equal(t, 0, loc.Column)
	require.Equal(t, fmt.Sprintf("%s@%d:0", loc.File, loc.Line), loc.String())
}

// currentLine returns the line of its call expression.
func currentLine() int {
	return Caller(1).Line
}

func TestResultWithLocation(t *testing.T) {
	require.Equal(t, Ok(1), Ok(1).WithLocation())

	result, loc := Fail[int](New("error")).WithLocation(), Caller(0)
	require.Equal(t, fmt.Sprintf("at '%s': error", loc), result.Err().Error())

	explicit := Location{File: "main.go", Line: 10, Column: 4}
	result = Fail[int](New("error")).WithLocationAt(explicit)
	require.Equal(t, "at 'main.go@10:4': error", result.Err().Error())

	result = Fail[int](New("error")).WithContextAt(explicit, "read")
	require.Equal(t, "read at 'main.go@10:4': error", result.Err().Error())
	require.Equal(t, Ok(1), Ok(1).WithContextAt(explicit, "read"))
	require.Equal(t, Ok(1), Ok(1).WithLocationAt(explicit))
}

func TestOptionWithContext(t *testing.T) {
	require.Equal(t, Ok(1), Some(1).WithContext("ctx"))
	require.Equal(t, Ok(1), Some(1).WithLocation())

	result, loc := None[int]().WithContext("lookup"), Caller(0)
	require.Equal(t, fmt.Sprintf("lookup at '%s': Option is None", loc), result.Err().Error())
	require.ErrorIs(t, result.Err(), ErrNone)

	result, loc = None[int]().WithLocation(), Caller(0)
	require.Equal(t, fmt.Sprintf("at '%s': Option is None", loc), result.Err().Error())

	explicit := Location{File: "main.go", Line: 3, Column: 9}
	require.Equal(t, "k at 'main.go@3:9': Option is None",
		None[int]().WithContextAt(explicit, "k").Err().Error())
	require.Equal(t, "at 'main.go@3:9': Option is None",
		None[int]().WithLocationAt(explicit).Err().Error())
	require.Equal(t, Ok(1), Some(1).WithContextAt(explicit, "k"))
	require.Equal(t, Ok(1), Some(1).WithLocationAt(explicit))
}

func TestContextLayering(t *testing.T) {
	original := New("original")
	result := Fail[int](original).WithContext("v1").WithContext("v2")

	chain := Chain(result.Err())
	require.Len(t, chain, 3)
	require.True(t, strings.HasPrefix(chain[0].(*Error).Message(), "v2 at '"))
	require.True(t, strings.HasPrefix(chain[1].(*Error).Message(), "v1 at '"))
	require.Same(t, original, chain[2])
	require.Same(t, original, Root(result.Err()))
	require.ErrorIs(t, result.Err(), original)

	// the debug rendering carries the trace of the original error
	require.Contains(t, fmt.Sprintf("%+v", result.Err()), "TestContextLayering")
}

func TestPlainErrorAnnotations(t *testing.T) {
	logger := withMockLogger(t)

	require.Nil(t, Log(nil))
	require.Nil(t, LogMsg(nil, "test"))
	require.Nil(t, WithContext(nil, "ctx"))
	require.Nil(t, WithLocation(nil))

	cause := stderr.New("error")
	logger.On("Errorf", "error").Once()
	require.Same(t, cause, Log(cause))
	logger.On("Errorf", "test: error").Once()
	require.Same(t, cause, LogMsg(cause, "test"))

	err, loc := WithContext(cause, "ctx"), Caller(0)
	require.Equal(t, fmt.Sprintf("ctx at '%s': error", loc), err.Error())
	require.ErrorIs(t, err, cause)

	err, loc = WithLocation(cause), Caller(0)
	require.Equal(t, fmt.Sprintf("at '%s': error", loc), err.Error())
}

func TestAnnotationsAreIdentityOnSuccess(t *testing.T) {
	logger := withMockLogger(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("result annotations keep success", prop.ForAll(
		func(n int, msg string) bool {
			r := Ok(n)
			return r.Log() == r && r.LogMsg(msg) == r &&
				r.WithContext(msg) == r && r.WithLocation() == r
		},
		gen.Int(),
		gen.AnyString(),
	))

	properties.Property("option annotations keep success", prop.ForAll(
		func(n int, msg string) bool {
			o := Some(n)
			return o.Log() == Ok(n) && o.LogMsg(msg) == Ok(n) &&
				o.WithContext(msg) == Ok(n) && o.WithLocation() == Ok(n)
		},
		gen.Int(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
	logger.AssertNotCalled(t, "Error", mock.Anything)
	logger.AssertNotCalled(t, "Errorf", mock.Anything)
}
