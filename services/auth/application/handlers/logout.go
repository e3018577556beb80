package handlers

import (
	"net/http"

	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/linentrack/pkg/validator"
	appsvcs "github.com/ghuser/linentrack/services/auth/application/services"
)

// LogoutHandler handles POST /auth/logout requests.
type LogoutHandler struct {
	svc *appsvcs.Services
}

// NewLogoutHandler returns a LogoutHandler backed by the given services.
func NewLogoutHandler(svc *appsvcs.Services) *LogoutHandler {
	return &LogoutHandler{svc: svc}
}

// Execute revokes a refresh token.
//
//	@Summary		Logout
//	@Description	Revokes the presented refresh token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	RefreshRequest	true	"Refresh token to revoke"
//	@Success		204
//	@Failure		401	{object}	AuthErrorResponse
//	@Failure		422	{object}	AuthErrorResponse
//	@Router			/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RefreshRequest](w, r)
	if !ok {
		return
	}

	revoked, err := h.svc.Auth.Logout(r.Context(), req.RefreshToken)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !revoked {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unknown refresh token"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
