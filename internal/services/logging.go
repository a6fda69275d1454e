package services

import (
	"context"
	"log/slog"
	"time"
)

// ServiceLogger provides structured operation logging for the service layer.
// Every engine entry point logs one line per call with its outcome and
// duration; bad input logs at warn, internal faults at error.
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, component string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", "grade-service", "component", component),
	}
}

// LogOperation records the outcome of one service operation.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, start time.Time, err error, args ...any) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"
		if IsValidation(err) || IsInvalidInput(err) {
			level = slog.LevelWarn
			status = "invalid_input"
		}
	}

	fields := []any{
		"operation", operation,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	fields = append(fields, args...)

	l.logger.Log(ctx, level, "service operation", fields...)
}

// Debug forwards to the underlying logger with the component fields attached.
func (l *ServiceLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Warn forwards to the underlying logger with the component fields attached.
func (l *ServiceLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }
