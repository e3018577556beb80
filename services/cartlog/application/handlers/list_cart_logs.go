package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	appsvcs "github.com/ghuser/linentrack/services/cartlog/application/services"
	"github.com/ghuser/linentrack/services/cartlog/domain/repositories"
)

// ListCartLogsHandler handles GET /cartlogs requests.
type ListCartLogsHandler struct {
	svc *appsvcs.Services
}

// NewListCartLogsHandler returns a ListCartLogsHandler backed by the given services.
func NewListCartLogsHandler(svc *appsvcs.Services) *ListCartLogsHandler {
	return &ListCartLogsHandler{svc: svc}
}

// Execute lists cart logs, optionally filtered by cart type, location name,
// or recording employee. Results are ordered by weigh date descending.
//
//	@Summary		List cart logs
//	@Description	Lists cart logs with optional cart-type, location, and employee filters
//	@Tags			cartlogs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			cartType	query		string	false	"Cart type filter"
//	@Param			location	query		string	false	"Location name filter"
//	@Param			employeeId	query		int		false	"Employee ID filter"
//	@Success		200			{array}		CartLogView
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/cartlogs [get]
func (h *ListCartLogsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f := repositories.Filter{
		CartType:     r.URL.Query().Get("cartType"),
		LocationName: r.URL.Query().Get("location"),
	}
	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "employeeId must be an integer")
			return
		}
		f.EmployeeID = id
	}

	views, err := h.svc.CartLog.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]CartLogView, 0, len(views))
	for _, v := range views {
		resp = append(resp, toCartLogView(v))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
