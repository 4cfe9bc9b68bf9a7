package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// maxSQLLength bounds the statement text written to a log entry.
const maxSQLLength = 1000

// GormLogger adapts zap to gorm's logger interface. Entries carry the
// request ID of the calling context.
type GormLogger struct {
	ZapLogger     *zap.Logger
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

// NewGormLoggerWithConfig creates a GORM logger. Queries slower than
// slowQuerySeconds are logged as warnings; logLevel uses the application
// level names.
func NewGormLoggerWithConfig(zapLogger *zap.Logger, slowQuerySeconds float64, logLevel string) *GormLogger {
	return &GormLogger{
		ZapLogger:     zapLogger.Named("gorm"),
		SlowThreshold: time.Duration(slowQuerySeconds * float64(time.Second)),
		LogLevel:      gormLevel(logLevel),
	}
}

// gormLevel maps application level names onto gorm levels. Debug enables
// statement logging.
func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Info, msg, data)
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Warn, msg, data)
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Error, msg, data)
}

func (l *GormLogger) printf(ctx context.Context, level gormlogger.LogLevel, msg string, data []any) {
	if l.LogLevel < level {
		return
	}
	log := WithContext(ctx, l.ZapLogger)
	text := fmt.Sprintf(msg, data...)
	switch level {
	case gormlogger.Error:
		log.Error(text)
	case gormlogger.Warn:
		log.Warn(text)
	default:
		log.Info(text)
	}
}

// Trace implements gormlogger.Interface. Failed statements log at error,
// slow ones at warn and the rest at info. gorm.ErrRecordNotFound is not a
// failure: the repositories translate it into a domain not-found error.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.SlowThreshold != 0 && elapsed > l.SlowThreshold

	switch {
	case failed && l.LogLevel >= gormlogger.Error:
		fields := append(queryFields(fc, elapsed), zap.Error(err))
		WithContext(ctx, l.ZapLogger).Error("gorm query error", fields...)
	case slow && l.LogLevel >= gormlogger.Warn:
		fields := append(queryFields(fc, elapsed), zap.Duration("threshold", l.SlowThreshold))
		WithContext(ctx, l.ZapLogger).Warn("gorm slow query", fields...)
	case l.LogLevel >= gormlogger.Info:
		WithContext(ctx, l.ZapLogger).Info("gorm query", queryFields(fc, elapsed)...)
	}
}

// queryFields renders the statement only when an entry is actually written.
func queryFields(fc func() (string, int64), elapsed time.Duration) []zap.Field {
	sql, rows := fc()

	op := sql
	if i := strings.IndexByte(op, ' '); i > 0 {
		op = op[:i]
	}

	fields := []zap.Field{
		zap.String("operation", strings.ToUpper(op)),
		zap.Int64("rows", rows),
		zap.Float64("elapsed_ms", float64(elapsed.Microseconds())/1e3),
	}
	if len(sql) > maxSQLLength {
		return append(fields, zap.String("sql", sql[:maxSQLLength]+"..."), zap.Bool("sql_truncated", true))
	}
	return append(fields, zap.String("sql", sql))
}
