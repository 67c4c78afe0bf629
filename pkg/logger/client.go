package logger

// Field is a structured log attribute.
type Field struct {
	Key   string
	Value any
}

// Client is the logging interface used across the service.
type Client interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
