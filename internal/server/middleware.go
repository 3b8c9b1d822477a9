package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	applog "barkeep/internal/log"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an identifier, echoes it in the response
// header, and logs the request once served. Incoming identifiers from
// upstream proxies are kept.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		applog.Debug(r.Context(), "request served",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
