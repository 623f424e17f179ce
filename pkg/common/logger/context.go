package logger

import "context"

// LoggerContext accumulates attributes over the course of an operation and
// logs them with every subsequent record.
type LoggerContext struct {
	logger *Logger
}

// NewLoggerContext wraps l so attributes can be added as they become known.
func NewLoggerContext(l *Logger) *LoggerContext { return &LoggerContext{logger: l} }

// Add attaches key/value pairs to every record logged after the call.
func (lc *LoggerContext) Add(args ...any) { lc.logger = lc.logger.With(args...) }

// Logger returns the logger with all attributes added so far.
func (lc *LoggerContext) Logger() *Logger { return lc.logger }

func (lc *LoggerContext) Debug(ctx context.Context, msg string, args ...any) {
	lc.logger.write(ctx, LevelDebug, 3, msg, args...)
}

func (lc *LoggerContext) Info(ctx context.Context, msg string, args ...any) {
	lc.logger.write(ctx, LevelInfo, 3, msg, args...)
}

func (lc *LoggerContext) Warn(ctx context.Context, msg string, args ...any) {
	lc.logger.write(ctx, LevelWarn, 3, msg, args...)
}

func (lc *LoggerContext) Error(ctx context.Context, msg string, args ...any) {
	lc.logger.write(ctx, LevelError, 3, msg, args...)
}
