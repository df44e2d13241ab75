package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"lawclerk/internal/httputil"
)

// RequestID assigns a fresh UUID to every request and echoes it back in
// the X-Request-ID header so provider-call logs can be correlated with a
// caller report.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}

			r = httputil.WithRequestID(r, id)
			w.Header().Set("X-Request-ID", id)

			next.ServeHTTP(w, r)
		})
	}
}
