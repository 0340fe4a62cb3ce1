package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware converts handler panics into a 500 response. The
// response is only written when the handler had not started one before
// panicking.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Printf("panic recovered: request_id=%s error=%v stack=%s",
				RequestIDFrom(r), rec, debug.Stack())

			if rw, ok := w.(*responseWriter); ok && rw.wroteHeader() {
				return
			}
			JSONErrorWithRequest(r, w, http.StatusInternalServerError,
				"INTERNAL_ERROR", "Ocorreu um erro interno. Tente novamente mais tarde.", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
