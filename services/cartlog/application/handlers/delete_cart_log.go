package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/linentrack/pkg/auth"
	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	appsvcs "github.com/ghuser/linentrack/services/cartlog/application/services"
)

// DeleteCartLogHandler handles DELETE /cartlogs/{cartLogId} requests.
type DeleteCartLogHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCartLogHandler returns a DeleteCartLogHandler backed by the given services.
func NewDeleteCartLogHandler(svc *appsvcs.Services) *DeleteCartLogHandler {
	return &DeleteCartLogHandler{svc: svc}
}

// Execute deletes a cart log owned by the caller, cascading to its line
// items and to linen catalog rows no other cart log references.
//
//	@Summary		Delete cart log
//	@Description	Deletes a cart log and its line items; owner only
//	@Tags			cartlogs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			cartLogId	path	int	true	"Cart log ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/cartlogs/{cartLogId} [delete]
func (h *DeleteCartLogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	callerID, err := auth.EmployeeIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "cartLogId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "cartLogId must be an integer")
		return
	}

	deleted, err := h.svc.CartLog.Delete(r.Context(), id, callerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !deleted {
		// Delete reports failures through typed errors; a false without an
		// error should not happen, but keep the boolean contract honest.
		httpx.JSONError(w, http.StatusNotFound, "cart log not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
