package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/domain/invoicing"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
)

const apiKeyHeader = "X-API-Key"

// Auth resolves the caller from a bearer token or, for service calls, from
// the API key header. Requests without valid credentials pass through
// anonymous; RequireRequester rejects them where needed.
func Auth(secret, apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requester, ok := authenticate(r, secret, apiKeyHash); ok {
				r = r.WithContext(requestctx.WithRequester(r.Context(), requester))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(r *http.Request, secret, apiKeyHash string) (invoicing.Requester, bool) {
	if key := r.Header.Get(apiKeyHeader); key != "" {
		if err := auth.CheckAPIKey(apiKeyHash, key); err != nil {
			slog.Warn("api key rejected", "path", r.URL.Path, "requestId", GetRequestID(r.Context()))
			return invoicing.Requester{}, false
		}
		return auth.ServiceRequester(), true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || secret == "" {
		return invoicing.Requester{}, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return invoicing.Requester{}, false
	}
	claims, err := auth.ParseToken(secret, parts[1])
	if err != nil {
		return invoicing.Requester{}, false
	}
	return claims.Requester(), true
}

func GetRequester(ctx context.Context) (invoicing.Requester, bool) {
	return requestctx.GetRequester(ctx)
}

func RequireRequester(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetRequester(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits authenticated callers holding one of roles.
func RequireRole(roles ...invoicing.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requester, ok := GetRequester(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			for _, role := range roles {
				if requester.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
		})
	}
}
