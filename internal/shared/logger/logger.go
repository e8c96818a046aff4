package logger

// Logger defines the interface for logging operations.
// Satisfied by *infrastructure/logger.Logger and *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
