package utils

import (
	"Groeneweide-Backend/domain"
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("Groeneweide-Backend")

func StartOperation(ctx context.Context, entity, operation string) (context.Context, trace.Span) {
	return tracer.Start(ctx, entity+"."+operation, trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
	))
}

// EndOperation closes span and records err. Rule rejections are logged at
// info; store and unclassified failures at error and mark the span failed.
func EndOperation(span trace.Span, logger *zap.Logger, entity, operation string, err error) {
	defer span.End()
	if err == nil {
		return
	}

	kind := domain.KindOf(err)
	RuleRejections.WithLabelValues(entity, kind).Inc()
	span.SetAttributes(attribute.String("rejection.kind", kind))

	fields := []zap.Field{
		zap.String("entity", entity),
		zap.String("operation", operation),
		zap.String("kind", kind),
		zap.Error(err),
	}
	if kind == domain.KindStoreUnavailable || kind == domain.KindUnknown {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("operation failed", fields...)
		return
	}
	logger.Info("operation rejected", fields...)
}
