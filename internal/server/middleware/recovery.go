package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/gophbook/internal/server/respond"
)

// RecoveryMiddleware превращает panic обработчика в JSON 500 со стеком в логе.
// http.ErrAbortHandler пробрасывается дальше, им net/http обрывает соединение
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("handler panicked",
					"panic", rec,
					"method", r.Method,
					"route", routeTemplate(r),
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				respond.Error(w, logger, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
