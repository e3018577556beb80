package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
	appsvcs "github.com/ghuser/linentrack/services/cartlog/application/services"
)

// GetCartLogHandler handles GET /cartlogs/{cartLogId} requests.
type GetCartLogHandler struct {
	svc *appsvcs.Services
}

// NewGetCartLogHandler returns a GetCartLogHandler backed by the given services.
func NewGetCartLogHandler(svc *appsvcs.Services) *GetCartLogHandler {
	return &GetCartLogHandler{svc: svc}
}

// Execute returns one cart log joined to its catalog references and line
// items. Line items are suppressed when the cart is of the soiled type.
//
//	@Summary		Get cart log
//	@Description	Returns a cart log with its cart, location, employee, and line items
//	@Tags			cartlogs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			cartLogId	path		int	true	"Cart log ID"
//	@Success		200			{object}	CartLogView
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/cartlogs/{cartLogId} [get]
func (h *GetCartLogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "cartLogId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "cartLogId must be an integer")
		return
	}

	view, err := h.svc.CartLog.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toCartLogView(view)
	if resp.Cart != nil && resp.Cart.Type == models.SoiledCartType {
		resp.LineItems = []LineItemView{}
	}

	httpx.JSON(w, http.StatusOK, resp)
}
