package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/typespeed-backend/pkg/ctxutil"
)

// quietRoutes are polled by orchestrators and scrapers. They log at debug.
var quietRoutes = map[string]bool{
	"GET /live":    true,
	"GET /ready":   true,
	"GET /metrics": true,
}

// Logger writes one "http.request" record per request once the handler has
// returned. Route and user come from Capture further down the chain.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw, r := capturing(w, r)

			next.ServeHTTP(sw, r)

			attrs := make([]slog.Attr, 0, 8)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if sw.route != "" {
				attrs = append(attrs, slog.String("route", sw.route))
			}
			if sw.userID != "" {
				attrs = append(attrs, slog.String("user_id", sw.userID))
			}

			logger.LogAttrs(r.Context(), requestLevel(sw.route, sw.status), "http.request", attrs...)
		})
	}
}

func requestLevel(route string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests, status == http.StatusLocked:
		return slog.LevelWarn
	case quietRoutes[route]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter records what the handler sent, plus the request facts only
// known to inner handlers.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	written     int64

	route  string
	userID string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
