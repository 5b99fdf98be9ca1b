package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// logrusLogger is the Logger implementation backing this package.
type logrusLogger struct {
	mu sync.Mutex
	l  *logrus.Logger
}

var (
	defaultLogger     *logrusLogger
	defaultLoggerInit sync.Once
)

// New creates a Logger with level Debug, writing to stderr via logrus's
// default text formatter. The first Logger created also becomes the
// package-level Default().
func New() Logger {
	l := &logrusLogger{l: logrus.New()}
	l.SetLevel(string(DebugLevel))
	defaultLoggerInit.Do(func() {
		defaultLogger = l
	})
	return l
}

// Default returns the first Logger created by New, or a freshly
// created one if none exists yet.
func Default() Logger {
	if defaultLogger == nil {
		return New()
	}
	return defaultLogger
}

// decorate attaches the calling file:line and function name as fields,
// matching the donor package's caller-aware logging.
func (l *logrusLogger) decorate(skip int) *logrus.Entry {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return logrus.NewEntry(l.l)
	}
	fName := runtime.FuncForPC(pc).Name()
	parts := strings.Split(file, string(os.PathSeparator))
	if len(parts) > 3 {
		parts = parts[len(parts)-3:]
	}
	position := fmt.Sprintf("%s:%d", strings.Join(parts, string(os.PathSeparator)), line)
	return l.l.WithField("position", position).WithField("func", fName)
}

func (l *logrusLogger) Trace(format string, v ...interface{}) { l.decorate(2).Tracef(format, v...) }
func (l *logrusLogger) Debug(format string, v ...interface{}) { l.decorate(2).Debugf(format, v...) }
func (l *logrusLogger) Info(format string, v ...interface{})  { l.decorate(2).Infof(format, v...) }
func (l *logrusLogger) Warn(format string, v ...interface{})  { l.decorate(2).Warnf(format, v...) }
func (l *logrusLogger) Error(format string, v ...interface{}) { l.decorate(2).Errorf(format, v...) }

func (l *logrusLogger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.Out = out
}

func (l *logrusLogger) GetOutput() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.l.Out
}

func (l *logrusLogger) GetLevel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.l.Level)
}

func (l *logrusLogger) setLevel(lvl int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l.Level = logrus.Level(lvl)
}

func (l *logrusLogger) SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "trace":
		l.setLevel(LevelTrace)
	case "debug":
		l.setLevel(LevelDebug)
	case "info":
		l.setLevel(LevelInfo)
	case "warn":
		l.setLevel(LevelWarn)
	case "error":
		l.setLevel(LevelError)
	case "fatal":
		l.setLevel(LevelFatal)
	case "panic":
		l.setLevel(LevelPanic)
	default:
		l.setLevel(LevelInfo)
	}
}
