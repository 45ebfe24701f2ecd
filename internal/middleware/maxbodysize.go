package middleware

import (
	"net/http"
	"strconv"
)

const tooLargeBody = `{"status":"error","message":"Request body too large."}`

// NewMaxBodySizeHandler caps request bodies at limit bytes. A request whose
// Content-Length already exceeds the cap is answered with a 413 error
// envelope. Other bodies are wrapped in http.MaxBytesReader, and the handler
// that decodes them reports the overflow itself.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Content-Length", strconv.Itoa(len(tooLargeBody)))
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(tooLargeBody))
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
