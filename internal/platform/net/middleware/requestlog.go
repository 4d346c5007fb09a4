package middleware

import (
	"net/http"

	"arc/internal/platform/logger"
	pnet "arc/internal/platform/net"
)

// RequestScope copies request correlation ids onto the logger context
// mount after RequestID so chi has already assigned one
func RequestScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), pnet.BatchID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
