// Package accesslog logs one structured line per HTTP request.
package accesslog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wizardwayz/portal/pkg/clientip"
	"github.com/wizardwayz/portal/pkg/logger"
	"github.com/wizardwayz/portal/pkg/requestid"
)

// Middleware logs method, path, status, duration, request id and client
// address after the wrapped handler returns. Server errors log at error,
// client errors at warn, everything else at info. Paths in skip are not
// logged.
func Middleware(log *slog.Logger, skip ...string) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skipped[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.LogAttrs(r.Context(), levelFor(status), "http request",
				logger.HTTPRequest(r.Method, r.URL.Path, status),
				logger.Duration(time.Since(start)),
				logger.RequestID(requestid.FromContext(r.Context())),
				slog.String("client_ip", clientip.FromContext(r.Context())),
				slog.Int("bytes", ww.BytesWritten()),
			)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
