package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/trendplan-backend/pkg/ctxutil"
)

// ClientIP stores the remote host (port stripped) in the request context.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), host)))
	})
}
