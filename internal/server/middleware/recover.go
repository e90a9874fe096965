package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/logger"
)

// Recover turns a handler panic into a 500 JSON response.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	log = logger.Component(log, "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("handler panicked",
					zap.String(logger.FieldRequestID, GetRequestID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"))
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
