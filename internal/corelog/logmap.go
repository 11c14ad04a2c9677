// Package corelog is a small structured logger for the cmd/ binaries,
// merged from the teacher's two logging variants: the simpler level enum
// of corelog/logmap.go (no per-repo fan-out — a handful of CLI programs
// never need it) with the glog-style formatter of capnslog/formatters.go.
package corelog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogLevel is the set of all log levels, ordered from least to most
// verbose.
type LogLevel int8

const (
	// CRITICAL is the lowest log level; only errors that end the program
	// are logged at it.
	CRITICAL LogLevel = -1
	// ERROR is for errors that are not fatal but lead to troubling behavior.
	ERROR LogLevel = 0
	// WARNING is for unusual but non-fatal conditions.
	WARNING LogLevel = 1
	// INFO is for common, everyday updates (bytes read, block counts).
	INFO LogLevel = 2
	// DEBUG is for verbose internal tracing.
	DEBUG LogLevel = 3
)

// Char returns a single-character representation of the log level, used by
// the glog-style header.
func (l LogLevel) Char() string {
	switch l {
	case CRITICAL:
		return "C"
	case ERROR:
		return "E"
	case WARNING:
		return "W"
	case INFO:
		return "I"
	case DEBUG:
		return "D"
	default:
		return "?"
	}
}

// ParseLevel translates a command-line or config string into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch s {
	case "CRITICAL", "C":
		return CRITICAL, nil
	case "ERROR", "E":
		return ERROR, nil
	case "WARNING", "W":
		return WARNING, nil
	case "INFO", "I":
		return INFO, nil
	case "DEBUG", "D":
		return DEBUG, nil
	}
	return CRITICAL, fmt.Errorf("corelog: couldn't parse log level %q", s)
}

type loggerStruct struct {
	lock      sync.Mutex
	level     LogLevel
	formatter Formatter
}

var logger = &loggerStruct{
	level:     INFO,
	formatter: NewGlogFormatter(os.Stderr),
}

// SetLevel sets the process-wide minimum level that will be emitted.
func SetLevel(l LogLevel) {
	logger.lock.Lock()
	defer logger.lock.Unlock()
	logger.level = l
}

// SetOutput redirects where the default formatter writes.
func SetOutput(w io.Writer) {
	logger.lock.Lock()
	defer logger.lock.Unlock()
	logger.formatter = NewGlogFormatter(w)
}

// SetFormatter overrides the formatter entirely.
func SetFormatter(f Formatter) {
	logger.lock.Lock()
	defer logger.lock.Unlock()
	logger.formatter = f
}

func logf(depth int, level LogLevel, format string, args ...interface{}) {
	logger.lock.Lock()
	defer logger.lock.Unlock()
	if logger.level < level {
		return
	}
	if logger.formatter != nil {
		logger.formatter.Format(level, depth+1, fmt.Sprintf(format, args...))
	}
}

const calldepth = 2

// Infof logs at INFO.
func Infof(format string, args ...interface{}) { logf(calldepth, INFO, format, args...) }

// Warningf logs at WARNING.
func Warningf(format string, args ...interface{}) { logf(calldepth, WARNING, format, args...) }

// Errorf logs at ERROR.
func Errorf(format string, args ...interface{}) { logf(calldepth, ERROR, format, args...) }

// Debugf logs at DEBUG.
func Debugf(format string, args ...interface{}) { logf(calldepth, DEBUG, format, args...) }

// Fatalf logs at CRITICAL and then exits the process with status 1.
func Fatalf(format string, args ...interface{}) {
	logf(calldepth, CRITICAL, format, args...)
	os.Exit(1)
}
