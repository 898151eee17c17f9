package logger

import (
	"fmt"
	"log"
	"os"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// Logger is a minimal leveled logger. Handlers use it where the service
// surface logs faults before converting them to a response envelope.
type Logger struct {
	level Level
	log   *log.Logger
}

func New(level Level) *Logger {
	return &Logger{
		level: level,
		log:   log.New(os.Stdout, "", log.LstdFlags),
	}
}

func (l *Logger) output(level Level, format string, v ...interface{}) {
	if l.level > level {
		return
	}
	l.log.Printf("[%s] %s", levelNames[level], fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) { l.output(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.output(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.output(WARN, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.output(ERROR, format, v...) }

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

var defaultLogger = New(INFO)

// Package-level functions write through the default logger.
func Debug(format string, v ...interface{}) { defaultLogger.Debug(format, v...) }
func Info(format string, v ...interface{})  { defaultLogger.Info(format, v...) }
func Warn(format string, v ...interface{})  { defaultLogger.Warn(format, v...) }
func Error(format string, v ...interface{}) { defaultLogger.Error(format, v...) }

// SetGlobalLevel sets the level for the default logger.
func SetGlobalLevel(level Level) {
	defaultLogger.SetLevel(level)
}
