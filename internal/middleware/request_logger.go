package middleware

import (
	"fmt"
	"net/http"
	"time"
	"waste-sorting-app/internal/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request and stores a logger tagged with
// the request id in the request context. It must run after chi's RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With(map[string]interface{}{
				"request_id": chimw.GetReqID(r.Context()),
			})
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				reqLog.With(map[string]interface{}{
					"method":   r.Method,
					"path":     r.URL.Path,
					"status":   status,
					"bytes":    ww.BytesWritten(),
					"duration": time.Since(start).String(),
				}).Info(fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			}()

			next.ServeHTTP(ww, r.WithContext(WithLogger(r.Context(), reqLog)))
		})
	}
}
