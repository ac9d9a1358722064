package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/metrics"
)

// Metrics records request counts and latency per route pattern. It must wrap
// the ServeMux directly so the matched pattern is visible on the request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(r.Method, route, sw.status, time.Since(start))
	})
}
