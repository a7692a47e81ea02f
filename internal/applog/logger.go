// Package applog is the level logger shared by the datastore actor, the
// connection pipeline and the CLI entry point: four *log.Logger instances,
// one per level, each writing to stderr with a level prefix.
package applog

import (
	"log"
	"os"
)

const (
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
	levelDebug = "DEBUG"
)

// Logger dispatches formatted messages to one of four level-tagged
// *log.Logger instances.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
	debug *log.Logger
}

// New builds a Logger writing to stderr.
func New() *Logger {
	return &Logger{
		info:  log.New(os.Stderr, "[INFO]  ", log.Ldate|log.Ltime),
		warn:  log.New(os.Stderr, "[WARN]  ", log.Ldate|log.Ltime),
		error: log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime),
		debug: log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) { l.printf(levelInfo, format, v...) }

// Warn logs a warning message.
func (l *Logger) Warn(format string, v ...interface{}) { l.printf(levelWarn, format, v...) }

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) { l.printf(levelError, format, v...) }

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...interface{}) { l.printf(levelDebug, format, v...) }

func (l *Logger) printf(level, format string, v ...interface{}) {
	switch level {
	case levelInfo:
		l.info.Printf(format, v...)
	case levelWarn:
		l.warn.Printf(format, v...)
	case levelError:
		l.error.Printf(format, v...)
	case levelDebug:
		l.debug.Printf(format, v...)
	}
}
