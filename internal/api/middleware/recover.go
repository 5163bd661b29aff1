package middleware

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
)

// Recoverer turns a panic in a downstream handler into the standard 500
// error envelope and logs it with the request's logger.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			// net/http uses this panic to abort a response on purpose.
			if p == http.ErrAbortHandler {
				panic(p)
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"An unexpected error occurred", fmt.Errorf("panic: %v", p))
		}()

		next.ServeHTTP(w, r)
	})
}
