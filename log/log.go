// Copyright 2021-2024 The utility Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package log provides a simple logging interface with levels.
// It is backed by zerolog and provides the levels TRACE, DEBUG, INFO, WARN, ERROR
// and FATAL. The package-level functions forward to a process-wide default logger.

package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

var Exit = os.Exit

type Level int

// String follow the fmt.Stringer interface
// returns the string level
func (l Level) String() string {
	if l >= TRACE && l <= FATAL {
		return levels[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// zerolog maps the level onto the zerolog level used for the record.
func (l Level) zerolog() zerolog.Level {
	switch {
	case l <= TRACE:
		return zerolog.TraceLevel
	case l >= FATAL:
		return zerolog.FatalLevel
	}
	return zerologLevels[l]
}

// ToLevel converts a string, int, or Level to a Level type.
// ToLevel(1)         -> DEBUG
// ToLevel("debug")   -> DEBUG
// ToLevel("Warning") -> WARN
// ToLevel(ERROR)     -> ERROR
func ToLevel(level any) Level {
	return ToLevelWithDefault(level, defaultLevel)
}

// ToLevelWithDefault returns a legal Level and returns def if the conversion fails.
func ToLevelWithDefault(level any, def Level) Level {
	switch lv := level.(type) {
	case string:
		return string2Level(lv, def)
	case Level:
		return lv
	case int:
		return Level(lv)
	default:
		return def
	}
}

// string2Level returns the Level named by level, ignoring case, or def.
func string2Level(level string, def Level) Level {
	switch strings.ToLower(level) {
	case "trace":
		return TRACE
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warning", "warn":
		return WARN
	case "error", "err":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return def
	}
}

var (
	levels = []string{
		"trace",
		"debug",
		"info",
		"warn",
		"error",
		"fatal",
	}
	zerologLevels = []zerolog.Level{
		zerolog.TraceLevel,
		zerolog.DebugLevel,
		zerolog.InfoLevel,
		zerolog.WarnLevel,
		zerolog.ErrorLevel,
		zerolog.FatalLevel,
	}
	defaultLevel = WARN
)

// Logger is a logger interface that provides logging function with levels.
type Logger interface {
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	SetLevel(Level)
	SetOutput(io.Writer)
}

type defaultLogger struct {
	zl      zerolog.Logger
	out     io.Writer
	console bool
	level   Level
}

// newDefaultLogger creates a zerolog backed logger writing to w.
func newDefaultLogger(w io.Writer, lv Level) *defaultLogger {
	l := &defaultLogger{level: lv}
	l.SetOutput(w)
	return l
}

func (l *defaultLogger) SetOutput(w io.Writer) {
	l.out = w
	if l.console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	l.zl = zerolog.New(w).With().Timestamp().Logger()
}

// setConsole switches between JSON lines and the human readable console format.
func (l *defaultLogger) setConsole(console bool) {
	l.console = console
	l.SetOutput(l.out)
}

func (l *defaultLogger) SetLevel(lv Level) {
	l.level = lv
}

func (l *defaultLogger) logf(lv Level, format *string, args ...any) {
	if lv < l.level {
		return
	}
	var msg string
	if format != nil {
		msg = fmt.Sprintf(*format, args...)
	} else {
		msg = fmt.Sprint(args...)
	}
	// WithLevel never exits on its own, FATAL goes through Exit.
	l.zl.WithLevel(lv.zerolog()).Msg(msg)
	if lv >= FATAL {
		Exit(1)
	}
}

func (l *defaultLogger) Fatal(args ...any) {
	l.logf(FATAL, nil, args...)
}

func (l *defaultLogger) Error(args ...any) {
	l.logf(ERROR, nil, args...)
}

func (l *defaultLogger) Warn(args ...any) {
	l.logf(WARN, nil, args...)
}

func (l *defaultLogger) Info(args ...any) {
	l.logf(INFO, nil, args...)
}

func (l *defaultLogger) Debug(args ...any) {
	l.logf(DEBUG, nil, args...)
}

func (l *defaultLogger) Trace(args ...any) {
	l.logf(TRACE, nil, args...)
}

func (l *defaultLogger) Fatalf(format string, args ...any) {
	l.logf(FATAL, &format, args...)
}

func (l *defaultLogger) Errorf(format string, args ...any) {
	l.logf(ERROR, &format, args...)
}

func (l *defaultLogger) Warnf(format string, args ...any) {
	l.logf(WARN, &format, args...)
}

func (l *defaultLogger) Infof(format string, args ...any) {
	l.logf(INFO, &format, args...)
}

func (l *defaultLogger) Debugf(format string, args ...any) {
	l.logf(DEBUG, &format, args...)
}

func (l *defaultLogger) Tracef(format string, args ...any) {
	l.logf(TRACE, &format, args...)
}

var logger Logger = newDefaultLogger(os.Stderr, defaultLevel)

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetConsole switches the default logger to zerolog's console format when console
// is true and back to JSON lines otherwise. It has no effect on a logger installed
// with SetLogger.
func SetConsole(console bool) {
	if l, ok := logger.(*defaultLogger); ok {
		l.setConsole(console)
	}
}

// SetLevel sets the level of logs below which logs will not be output.
// The default log level is defaultLevel.
// Note that this method is not concurrent-safe.
func SetLevel(lv any) {
	logger.SetLevel(ToLevel(lv))
}

// DefaultLogger return the default logger.
func DefaultLogger() Logger {
	return logger
}

// SetLogger sets the default logger.
// Note that this method is not concurrent-safe and must not be called
// after the use of DefaultLogger and global functions in this package.
func SetLogger(l Logger) {
	logger = l
}

// Fatal calls the default logger's Fatal method and then Exit(1).
func Fatal(args ...any) {
	logger.Fatal(args...)
}

// Error calls the default logger's Error method.
func Error(args ...any) {
	logger.Error(args...)
}

// Warn calls the default logger's Warn method.
func Warn(args ...any) {
	logger.Warn(args...)
}

// Info calls the default logger's Info method.
func Info(args ...any) {
	logger.Info(args...)
}

// Debug calls the default logger's Debug method.
func Debug(args ...any) {
	logger.Debug(args...)
}

// Trace calls the default logger's Trace method.
func Trace(args ...any) {
	logger.Trace(args...)
}

// Fatalf calls the default logger's Fatalf method and then Exit(1).
func Fatalf(format string, args ...any) {
	logger.Fatalf(format, args...)
}

// Errorf calls the default logger's Errorf method.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Warnf calls the default logger's Warnf method.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Infof calls the default logger's Infof method.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debugf calls the default logger's Debugf method.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Tracef calls the default logger's Tracef method.
func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}
