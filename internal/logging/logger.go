package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает структурированный логгер, пишущий в stderr.
// Stdout остаётся под отчёт об измерении.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// WithOperation добавляет к логгеру имя операции и путь к изображению
func WithOperation(logger *zap.Logger, operation, imagePath string) *zap.Logger {
	fields := []zap.Field{zap.String("operation", operation)}
	if imagePath != "" {
		fields = append(fields, zap.String("image", imagePath))
	}
	return logger.With(fields...)
}
