// Package log wraps github.com/sirupsen/logrus behind a small Logger
// interface so the channel and workerpool packages can log
// diagnostics without depending on logrus directly. Logging never
// participates in correctness: no call in this package may be made
// while a channel's mutex is held in a way that would change timing
// guarantees, and no logging call here can turn a Status into a
// different one.
package log

import "io"

// Severity levels, ordered least to most verbose, matching logrus.
const (
	LevelPanic = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

type level string

// Named levels accepted by Logger.SetLevel.
const (
	DebugLevel level = "debug"
	InfoLevel  level = "info"
	WarnLevel  level = "warn"
	ErrorLevel level = "error"
	FatalLevel level = "fatal"
	PanicLevel level = "panic"
)

// Logger is the minimal logging surface consumed by the rest of this
// module.
type Logger interface {
	Trace(format string, v ...interface{})
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	SetLevel(level string)
	GetLevel() int
	SetOutput(out io.Writer)
	GetOutput() io.Writer
}
