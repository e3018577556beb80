package auth

import (
	"net/http"
	"strings"

	"github.com/ghuser/linentrack/pkg/httpx"
	"github.com/ghuser/linentrack/pkg/logger"
)

// RequireAuth is a chi middleware that enforces authentication via bearer
// access tokens. It reads the Authorization header, validates the JWT, and
// injects the employee ID into the request context.
// Returns 401 Unauthorized if the header is missing, malformed, or the
// token fails validation.
//
// After this middleware, handlers can safely call auth.EmployeeIDFromCtx(r.Context()).
func RequireAuth(tokens *TokenIssuer, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				log.WarnContext(r.Context(), "malformed authorization header")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			employeeID, err := tokens.ParseAccessToken(tokenStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid access token", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}

			ctx := WithEmployeeID(r.Context(), employeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
