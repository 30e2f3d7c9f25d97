package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/typespeed-backend/pkg/ctxutil"
)

type captureKey struct{}

// capturing returns the request's shared statusWriter, creating it on first use.
func capturing(w http.ResponseWriter, r *http.Request) (*statusWriter, *http.Request) {
	if sw, ok := w.(*statusWriter); ok {
		return sw, r
	}
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	return sw, r.WithContext(context.WithValue(r.Context(), captureKey{}, sw))
}

// Capture records the matched route pattern and authenticated user for the
// outer Logger and Metrics middleware. It must run after the mux has matched
// the request, i.e. as the innermost wrapper of a route handler.
func Capture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sw, ok := r.Context().Value(captureKey{}).(*statusWriter); ok {
			sw.route = r.Pattern
			if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				sw.userID = id.String()
			}
		}
		next.ServeHTTP(w, r)
	})
}
