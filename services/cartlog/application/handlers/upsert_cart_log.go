package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/linentrack/pkg/auth"
	"github.com/ghuser/linentrack/pkg/errhttp"
	"github.com/ghuser/linentrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/linentrack/pkg/validator"
	appsvcs "github.com/ghuser/linentrack/services/cartlog/application/services"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// UpsertCartLogRequest is the full aggregate snapshot for POST /cartlogs/upsert.
// A cartLogId of 0 creates a new cart log; otherwise the stored header is
// updated in place (owner only).
type UpsertCartLogRequest struct {
	CartLogID      int64             `json:"cartLogId"      example:"0"`
	ReceiptNumber  string            `json:"receiptNumber"  validate:"required,max=255"  example:"R-2024-0123"`
	ReportedWeight float64           `json:"reportedWeight" validate:"gte=0"             example:"50"`
	ActualWeight   float64           `json:"actualWeight"   validate:"gte=0"             example:"51.5"`
	Comments       string            `json:"comments"       validate:"max=1024"          example:"left wheel sticking"`
	DateWeighed    time.Time         `json:"dateWeighed"    validate:"required"          example:"2024-01-15T10:30:00Z"`
	CartID         int64             `json:"cartId"         validate:"required"          example:"1"`
	LocationID     int64             `json:"locationId"     validate:"required"          example:"1"`
	EmployeeID     int64             `json:"employeeId"     validate:"required"          example:"2"`
	LineItems      []LineItemRequest `json:"lineItems"      validate:"dive"`
} // @name UpsertCartLogRequest

// LineItemRequest is one submitted linen line. A lineItemId of 0 inserts a
// new row; a linenId of 0 (or one with no catalog row) creates a linen
// catalog entry from name.
type LineItemRequest struct {
	LineItemID int64  `json:"lineItemId" example:"0"`
	LinenID    int64  `json:"linenId"    example:"0"`
	Name       string `json:"name"       validate:"max=255" example:"Sheet"`
	Count      int    `json:"count"      validate:"gte=0"   example:"5"`
} // @name LineItemRequest

// UpsertCartLogResponse is the persisted header returned on success. Line
// items carry their generated ids; fetch the joined view via GET for the
// full projection.
type UpsertCartLogResponse struct {
	CartLogID      int64              `json:"cartLogId"      example:"7"`
	ReceiptNumber  string             `json:"receiptNumber"  example:"R-2024-0123"`
	ReportedWeight float64            `json:"reportedWeight" example:"50"`
	ActualWeight   float64            `json:"actualWeight"   example:"51.5"`
	Comments       string             `json:"comments"       example:"No comments"`
	DateWeighed    time.Time          `json:"dateWeighed"    example:"2024-01-15T10:30:00Z"`
	CartID         int64              `json:"cartId"         example:"1"`
	LocationID     int64              `json:"locationId"     example:"1"`
	EmployeeID     int64              `json:"employeeId"     example:"2"`
	LineItems      []LineItemResponse `json:"lineItems"`
} // @name UpsertCartLogResponse

// LineItemResponse is one persisted linen line with generated ids.
type LineItemResponse struct {
	LineItemID int64 `json:"lineItemId" example:"11"`
	LinenID    int64 `json:"linenId"    example:"3"`
	Count      int   `json:"count"      example:"5"`
} // @name LineItemResponse

// UpsertCartLogHandler handles POST /cartlogs/upsert requests.
type UpsertCartLogHandler struct {
	svc *appsvcs.Services
}

// NewUpsertCartLogHandler returns an UpsertCartLogHandler backed by the given services.
func NewUpsertCartLogHandler(svc *appsvcs.Services) *UpsertCartLogHandler {
	return &UpsertCartLogHandler{svc: svc}
}

// Execute creates or updates a cart log with its line items.
//
//	@Summary		Upsert cart log
//	@Description	Creates a cart log (cartLogId 0) or updates an existing one owned by the caller
//	@Tags			cartlogs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		UpsertCartLogRequest	true	"Cart log aggregate snapshot"
//	@Success		200		{object}	UpsertCartLogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/cartlogs/upsert [post]
func (h *UpsertCartLogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	callerID, err := auth.EmployeeIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpsertCartLogRequest](w, r)
	if !ok {
		return
	}

	log := toCartLog(req)
	persisted, err := h.svc.CartLog.Upsert(r.Context(), log, callerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUpsertResponse(persisted))
}

func toCartLog(req *UpsertCartLogRequest) *models.CartLog {
	log := &models.CartLog{
		ID:             req.CartLogID,
		ReceiptNumber:  req.ReceiptNumber,
		ReportedWeight: req.ReportedWeight,
		ActualWeight:   req.ActualWeight,
		Comments:       req.Comments,
		DateWeighed:    req.DateWeighed,
		CartID:         req.CartID,
		LocationID:     req.LocationID,
		EmployeeID:     req.EmployeeID,
	}
	for _, item := range req.LineItems {
		log.LineItems = append(log.LineItems, models.LineItem{
			ID:        item.LineItemID,
			LinenID:   item.LinenID,
			LinenName: item.Name,
			Count:     item.Count,
		})
	}
	return log
}

func toUpsertResponse(log *models.CartLog) UpsertCartLogResponse {
	resp := UpsertCartLogResponse{
		CartLogID:      log.ID,
		ReceiptNumber:  log.ReceiptNumber,
		ReportedWeight: log.ReportedWeight,
		ActualWeight:   log.ActualWeight,
		Comments:       log.Comments,
		DateWeighed:    log.DateWeighed,
		CartID:         log.CartID,
		LocationID:     log.LocationID,
		EmployeeID:     log.EmployeeID,
		LineItems:      make([]LineItemResponse, 0, len(log.LineItems)),
	}
	for _, item := range log.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			LineItemID: item.ID,
			LinenID:    item.LinenID,
			Count:      item.Count,
		})
	}
	return resp
}
