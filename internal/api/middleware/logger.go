package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger emits one line per request: chi request id, method, path,
// response status and elapsed time. Method and path come from the
// client, so CR/LF are stripped before they hit the log.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
		log.Printf(
			"[%s] %s %s %d %s",
			chimiddleware.GetReqID(r.Context()),
			sanitize(r.Method),
			sanitize(r.URL.Path),
			recorder.status,
			time.Since(start),
		)
	})
}

// statusRecorder captures the status code a handler writes so the log
// line can include it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
