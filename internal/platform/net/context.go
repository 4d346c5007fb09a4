// Package net provides request-context helpers shared by transport code
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyBatchID ctxKey = "batch_id"

// WithRequest annotates ctx with the request id (stored where chi can find it)
// and an optional ingest batch id
func WithRequest(ctx context.Context, reqID, batchID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if batchID != "" {
		ctx = context.WithValue(ctx, keyBatchID, batchID)
	}
	return ctx
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// BatchID returns the ingest batch id on the context, or ""
func BatchID(ctx context.Context) string {
	if v, ok := ctx.Value(keyBatchID).(string); ok {
		return v
	}
	return ""
}
