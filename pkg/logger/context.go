package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	operationKey contextKey = "operation"
	loggerKey    contextKey = "logger"
)

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithOperation adds the provider operation name to context
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey, operation)
}

// WithLogger adds logger to context
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// RequestID returns the request ID stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromContext extracts logger from context with all accumulated fields
func FromContext(ctx context.Context) *zap.Logger {
	l := Logger
	if ctx == nil {
		return l
	}
	if cl, ok := ctx.Value(loggerKey).(*zap.Logger); ok && cl != nil {
		l = cl
	}

	var fields []zap.Field
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if op, ok := ctx.Value(operationKey).(string); ok && op != "" {
		fields = append(fields, OperationField(op))
	}
	if len(fields) > 0 {
		l = l.With(fields...)
	}
	return l
}

// OperationField returns a zap field naming the provider operation
func OperationField(operation string) zap.Field {
	return zap.String("operation", operation)
}

// PayloadField returns a zap field carrying a raw provider payload
func PayloadField(payload []byte) zap.Field {
	return zap.ByteString("payload", payload)
}

// CountField returns a zap field for result counts
func CountField(count int) zap.Field {
	return zap.Int("count", count)
}
