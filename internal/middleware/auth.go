package middleware

import (
	"net/http"

	"github.com/imagebed/service/internal/auth"
	"github.com/imagebed/service/internal/response"
)

// RequireToken returns middleware that rejects requests whose X-Upload-Token
// header does not carry a currently valid token. Validation is stateless:
// each request re-checks the token against the configured credentials and
// the current wall clock.
func RequireToken(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authSvc.Verify(r.Header.Get(auth.TokenHeader)) {
				response.Unauthorized(w, "access denied, please log in first")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
