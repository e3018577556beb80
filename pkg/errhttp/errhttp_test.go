package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "github.com/ghuser/linentrack/services/auth/domain"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"cart log not found", cartlogdomain.ErrCartLogNotFound, http.StatusNotFound},
		{"cart not found", cartlogdomain.ErrCartNotFound, http.StatusNotFound},
		{"location not found", cartlogdomain.ErrLocationNotFound, http.StatusNotFound},
		{"cartlog employee not found", cartlogdomain.ErrEmployeeNotFound, http.StatusNotFound},
		{"auth employee not found", authdomain.ErrEmployeeNotFound, http.StatusNotFound},
		{"not owner", cartlogdomain.ErrNotOwner, http.StatusForbidden},
		{"validation", cartlogdomain.ErrValidation, http.StatusUnprocessableEntity},
		{"invalid credentials", authdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unrecognized", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("load cart log: %w", cartlogdomain.ErrCartLogNotFound), http.StatusNotFound},
		{"doubly wrapped validation", fmt.Errorf("%w: receipt number is required", cartlogdomain.ErrValidation), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tc.err)

			if rr.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, rr.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}
