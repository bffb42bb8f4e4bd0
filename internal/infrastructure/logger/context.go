package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	societeIDKey contextKey = "societe_id"
	userIDKey    contextKey = "user_id"
)

// WithContext returns a new context carrying the logger
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request ID in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithIdentity stores the authenticated societe and user in the context
func WithIdentity(ctx context.Context, societeID, userID int) context.Context {
	ctx = context.WithValue(ctx, societeIDKey, societeID)
	return context.WithValue(ctx, userIDKey, userID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetSocieteID retrieves the societe ID from context, zero when absent
func GetSocieteID(ctx context.Context) int {
	if id, ok := ctx.Value(societeIDKey).(int); ok {
		return id
	}
	return 0
}

// GetUserID retrieves the user ID from context, zero when absent
func GetUserID(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 0
}

// GetTraceID returns the active span's trace ID, or "".
func GetTraceID(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// contextFields collects trace, request and identity fields carried by ctx
func contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		fields = append(fields,
			zap.String("trace_id", spanCtx.TraceID().String()),
			zap.String("span_id", spanCtx.SpanID().String()),
		)
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if societeID := GetSocieteID(ctx); societeID > 0 {
		fields = append(fields, zap.Int("societe_id", societeID))
	}
	if userID := GetUserID(ctx); userID > 0 {
		fields = append(fields, zap.Int("user_id", userID))
	}
	return fields
}

// L returns the context logger enriched with trace, request and identity
// fields. Usage: logger.L(ctx).Info("message", zap.Int("id_article", id))
func L(ctx context.Context) *zap.Logger {
	return FromContext(ctx).With(contextFields(ctx)...)
}
