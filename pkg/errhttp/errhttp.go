// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/linentrack/pkg/httpx"
	authdomain "github.com/ghuser/linentrack/services/auth/domain"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; those get an
// opaque message so storage detail never reaches the caller.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, cartlogdomain.ErrCartLogNotFound),
		errors.Is(err, cartlogdomain.ErrCartNotFound),
		errors.Is(err, cartlogdomain.ErrLocationNotFound),
		errors.Is(err, cartlogdomain.ErrEmployeeNotFound),
		errors.Is(err, authdomain.ErrEmployeeNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, cartlogdomain.ErrNotOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, cartlogdomain.ErrValidation):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
