package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ghuser/linentrack/pkg/config"
	"github.com/ghuser/linentrack/pkg/logger"
)

func newMiddleware(t *testing.T) (func(http.Handler) http.Handler, *TokenIssuer) {
	t.Helper()
	issuer := NewTokenIssuer(testSecret, 15*time.Minute)
	log := logger.New(&config.Config{LogLevel: "error"})
	return RequireAuth(issuer, log), issuer
}

// echoEmployeeID writes the context employee ID so tests can assert the
// middleware injected it.
func echoEmployeeID(w http.ResponseWriter, r *http.Request) {
	id, err := EmployeeIDFromCtx(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(strconv.FormatInt(id, 10)))
}

func TestRequireAuth_ValidToken(t *testing.T) {
	mw, issuer := newMiddleware(t)
	signed, err := issuer.IssueAccessToken(42, "jordan@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	mw(http.HandlerFunc(echoEmployeeID)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "42" {
		t.Errorf("expected employee id 42 in context, got %q", rr.Body.String())
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	mw, issuer := newMiddleware(t)
	expiredIssuer := NewTokenIssuer(testSecret, -time.Minute)
	expired, err := expiredIssuer.IssueAccessToken(42, "jordan@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	valid, err := issuer.IssueAccessToken(42, "jordan@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"bearer with empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"missing prefix", valid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			mw(http.HandlerFunc(echoEmployeeID)).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rr.Code)
			}
		})
	}
}
