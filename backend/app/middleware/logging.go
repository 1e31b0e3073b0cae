package middleware

import (
	"net/http"
	"time"

	"edurev/backend/global"

	"github.com/rs/zerolog"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		duration := time.Since(start)

		var ev *zerolog.Event
		switch {
		case sw.status >= http.StatusInternalServerError:
			ev = global.Logger.Error()
		case sw.status >= http.StatusBadRequest:
			ev = global.Logger.Warn()
		default:
			ev = global.Logger.Info()
		}
		ev.Str("ip", r.RemoteAddr).Str("method", r.Method).Str("path", r.URL.Path).Int("status", sw.status).Dur("duration", duration).Msg("request")
	})
}
