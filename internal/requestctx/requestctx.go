package requestctx

import (
	"context"

	"backoffice/internal/domain/invoicing"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	requesterKey ctxKey = "requester"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithRequester(ctx context.Context, r invoicing.Requester) context.Context {
	return context.WithValue(ctx, requesterKey, r)
}

// GetRequester returns the authenticated caller, if any.
func GetRequester(ctx context.Context) (invoicing.Requester, bool) {
	r, ok := ctx.Value(requesterKey).(invoicing.Requester)
	return r, ok
}
