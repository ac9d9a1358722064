package middleware

import (
	"net/http"
	"slices"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one sees the request first:
// Chain(Recovery, RequestID())(h) serves as Recovery(RequestID()(h)).
// Nil entries are skipped so optional middleware can be listed inline.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
