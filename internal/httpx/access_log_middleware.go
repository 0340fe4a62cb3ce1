package httpx

import (
	"log"
	"net/http"
	"time"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	headerWritten bool
	// userID is filled in by AuthMiddleware once the token is verified,
	// since the derived request it passes downstream is invisible here.
	userID string
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.headerWritten {
		rw.statusCode = code
		rw.headerWritten = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

func (rw *responseWriter) wroteHeader() bool {
	return rw.headerWritten
}

// StatusRecorder receives the final status code of each request.
// Implemented by metrics.Collector.
type StatusRecorder interface {
	RecordHTTPStatus(statusCode int)
}

func AccessLogMiddleware(recorder StatusRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			if recorder != nil {
				recorder.RecordHTTPStatus(rw.statusCode)
			}

			duration := time.Since(start)
			log.Printf("access method=%s path=%s status=%d duration_ms=%d request_id=%s user_id=%s",
				r.Method,
				r.URL.Path,
				rw.statusCode,
				duration.Milliseconds(),
				RequestIDFrom(r),
				rw.userID,
			)
		})
	}
}
