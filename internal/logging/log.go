// Package logging is the leveled logger shared by the vsl tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is implemented by anything the vsl tools can log through.
// Applications can supply their own or fall back to the default logger.
type Logger interface {
	SetLogLevel(string) error
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Tracef(format string, v ...interface{})
	Printlf(level Level, format string, v ...interface{})
}

// Level orders log messages; a logger prints everything at or below its
// own level.
type Level int

const (
	LevelIgnore Level = iota + 1
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
	LevelTrace
)

var (
	mu  sync.RWMutex
	log Logger = &defaultLogger{level: LevelWarn, output: os.Stderr}
)

// SetLogger installs logger as the package logger. With a nil logger a
// default one is built from setts: "log.level" (default "warn") and
// "log.file" (default stderr).
func SetLogger(logger Logger, setts map[string]interface{}) (Logger, error) {
	if logger == nil {
		var err error
		if logger, err = newDefault(setts); err != nil {
			return nil, err
		}
	}
	mu.Lock()
	log = logger
	mu.Unlock()
	return logger, nil
}

func newDefault(setts map[string]interface{}) (Logger, error) {
	l := &defaultLogger{level: LevelWarn, output: os.Stderr}
	if s, ok := setts["log.level"].(string); ok && s != "" {
		if err := l.SetLogLevel(s); err != nil {
			return nil, err
		}
	}
	if name, ok := setts["log.file"].(string); ok && name != "" {
		fd, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o660)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.output = fd
	}
	return l, nil
}

// NewLogger returns a default logger writing to w.
func NewLogger(w io.Writer, level Level) Logger {
	return &defaultLogger{level: level, output: w}
}

type defaultLogger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

func (l *defaultLogger) SetLogLevel(s string) error {
	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return nil
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(LevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(LevelWarn, format, v...)
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Printlf(LevelInfo, format, v...)
}

func (l *defaultLogger) Verbosef(format string, v ...interface{}) {
	l.Printlf(LevelVerbose, format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	l.Printlf(LevelDebug, format, v...)
}

func (l *defaultLogger) Tracef(format string, v ...interface{}) {
	l.Printlf(LevelTrace, format, v...)
}

func (l *defaultLogger) Printlf(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.999Z07:00")
	msg := fmt.Sprintf(format, v...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(l.output, "%s [%s] %s", ts, level, msg)
}

func (l Level) String() string {
	switch l {
	case LevelIgnore:
		return "Ignor"
	case LevelError:
		return "Error"
	case LevelWarn:
		return "Warng"
	case LevelInfo:
		return "Infom"
	case LevelVerbose:
		return "Verbs"
	case LevelDebug:
		return "Debug"
	case LevelTrace:
		return "Trace"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a level name to a Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return LevelIgnore, nil
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Current returns the package logger installed by SetLogger.
func Current() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Errorf(format string, v ...interface{}) { Current().Printlf(LevelError, format, v...) }
func Warnf(format string, v ...interface{}) { Current().Printlf(LevelWarn, format, v...) }
func Infof(format string, v ...interface{}) { Current().Printlf(LevelInfo, format, v...) }
func Verbosef(format string, v ...interface{}) { Current().Printlf(LevelVerbose, format, v...) }
func Debugf(format string, v ...interface{}) { Current().Printlf(LevelDebug, format, v...) }
func Tracef(format string, v ...interface{}) { Current().Printlf(LevelTrace, format, v...) }
