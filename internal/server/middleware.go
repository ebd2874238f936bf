package server

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader carries the request id in both directions
const requestIDHeader = "X-Request-ID"

// requestID keeps a caller supplied X-Request-ID or assigns a new uuid, and echoes it on the response
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
