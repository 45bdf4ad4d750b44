package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"toranovel-reader/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a new logger instance
func NewLogger(levelStr string) domain.Logger {
	return &AppLogger{
		level: parseLogLevel(levelStr),
		out:   log.New(os.Stdout, "", 0),
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.write("INFO", msg, fields)
	}
}

// Error logs an error message with its cause
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		l.write("ERROR", msg, append([]interface{}{"error", err}, fields...))
	}
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.write("DEBUG", msg, fields)
	}
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.write("WARN", msg, fields)
	}
}

func (l *AppLogger) write(level, msg string, fields []interface{}) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg))

	// Fields arrive as key/value pairs; a trailing key without a value is
	// logged as-is rather than dropped.
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			b.WriteString(fmt.Sprintf(" %v=%v", fields[i], fields[i+1]))
		} else {
			b.WriteString(fmt.Sprintf(" %v", fields[i]))
		}
	}

	l.out.Println(b.String())
}

// parseLogLevel converts string log level to LogLevel enum
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
