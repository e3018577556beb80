package handlers

import (
	"net/http"

	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/linentrack/pkg/validator"
	appsvcs "github.com/ghuser/linentrack/services/auth/application/services"
)

// RefreshRequest is the request body for POST /auth/refresh and
// POST /auth/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required" example:"3q2+7w=="`
} // @name RefreshRequest

// RefreshHandler handles POST /auth/refresh requests.
type RefreshHandler struct {
	svc *appsvcs.Services
}

// NewRefreshHandler returns a RefreshHandler backed by the given services.
func NewRefreshHandler(svc *appsvcs.Services) *RefreshHandler {
	return &RefreshHandler{svc: svc}
}

// Execute rotates a refresh token into a new token pair. The presented
// token stops working once rotation succeeds.
//
//	@Summary		Refresh tokens
//	@Description	Exchanges a refresh token for a fresh access + refresh token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RefreshRequest	true	"Active refresh token"
//	@Success		200		{object}	TokenResponse
//	@Failure		401		{object}	AuthErrorResponse
//	@Failure		422		{object}	AuthErrorResponse
//	@Router			/auth/refresh [post]
func (h *RefreshHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RefreshRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.svc.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
