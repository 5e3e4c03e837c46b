package logging

import (
	"context"
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger backed by a zap JSON core
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a JSON logger writing to w at the given minimum level
func NewZapLogger(w io.Writer, level Level) *ZapLogger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		atomic,
	)
	return &ZapLogger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		level:  atomic,
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapFields(fields []Fields) []zap.Field {
	merged := make(Fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}
	out := make([]zap.Field, 0, len(merged))
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		out = append(out, zap.Any(k, merged[k]))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.logger.Debug(msg, zapFields(fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.logger.Info(msg, zapFields(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.logger.Warn(msg, zapFields(fields)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.logger.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.logger.Fatal(msg, append(zapFields(fields), zap.Error(err))...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		logger: z.logger.With(zapFields([]Fields{fields})...),
		level:  z.level,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered entries
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}
