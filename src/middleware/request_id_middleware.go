package middleware

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an id so log lines from one
// request can be correlated. The id is echoed back in the response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)
		log.Printf("INFO: %s %s - request_id: %s", r.Method, r.URL.Path, requestID)

		next.ServeHTTP(w, r)
	})
}
