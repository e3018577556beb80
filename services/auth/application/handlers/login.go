package handlers

import (
	"net/http"

	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/linentrack/pkg/validator"
	appsvcs "github.com/ghuser/linentrack/services/auth/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"jordan@example.com"`
	Password string `json:"password" validate:"required"       example:"hunter2hunter2"`
} // @name LoginRequest

// TokenResponse is returned on successful login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"  example:"eyJhbGciOiJIUzI1NiJ9..."`
	RefreshToken string `json:"refreshToken" example:"3q2+7w=="`
} // @name TokenResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
} // @name AuthErrorResponse

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	svc *appsvcs.Services
}

// NewLoginHandler returns a LoginHandler backed by the given services.
func NewLoginHandler(svc *appsvcs.Services) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Execute exchanges email and password for a token pair.
//
//	@Summary		Login
//	@Description	Verifies credentials and issues an access + refresh token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		401		{object}	AuthErrorResponse
//	@Failure		422		{object}	AuthErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	pair, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
