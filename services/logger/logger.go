package logger

import "log"

// Level là ngưỡng log tối thiểu, message dưới ngưỡng bị bỏ qua
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là điểm ghi log của các service, test có thể thay bằng logger câm
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi ra log chuẩn của Go, prefix theo mức
type DefaultLogger struct {
	level Level
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) logAt(at Level, prefix string, format string, v ...interface{}) {
	if l.level > at {
		return
	}
	log.Printf(prefix+format, v...)
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.logAt(InfoLevel, "[INFO] ", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.logAt(ErrorLevel, "[ERROR] ", format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.logAt(DebugLevel, "[DEBUG] ", format, v...)
}
