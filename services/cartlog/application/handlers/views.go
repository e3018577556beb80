package handlers

import (
	"time"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// CartLogView is the read-side response body for cart-log queries.
type CartLogView struct {
	CartLogID      int64          `json:"cartLogId"       example:"7"`
	ReceiptNumber  string         `json:"receiptNumber"   example:"R-2024-0123"`
	ReportedWeight float64        `json:"reportedWeight"  example:"50"`
	ActualWeight   float64        `json:"actualWeight"    example:"51.5"`
	Comments       string         `json:"comments"        example:"No comments"`
	DateWeighed    time.Time      `json:"dateWeighed"     example:"2024-01-15T10:30:00Z"`
	Cart           *CartView      `json:"cart"`
	Location       *LocationView  `json:"location"`
	Employee       *EmployeeView  `json:"employee"`
	LineItems      []LineItemView `json:"lineItems"`
} // @name CartLogView

// CartView is the cart catalog sub-object; null when the referenced cart
// row no longer exists.
type CartView struct {
	CartID int64   `json:"cartId" example:"1"`
	Name   string  `json:"name"   example:"Cart A"`
	Weight float64 `json:"weight" example:"12.5"`
	Type   string  `json:"type"   example:"Clean"`
} // @name CartView

// LocationView is the location catalog sub-object.
type LocationView struct {
	LocationID int64  `json:"locationId" example:"1"`
	Name       string `json:"name"       example:"Laundry Room"`
	Type       string `json:"type"       example:"Storage"`
} // @name LocationView

// EmployeeView is the employee sub-object.
type EmployeeView struct {
	EmployeeID int64  `json:"employeeId" example:"2"`
	Name       string `json:"name"       example:"Jordan Smith"`
} // @name EmployeeView

// LineItemView is one linen line on a cart log.
type LineItemView struct {
	LineItemID int64  `json:"lineItemId" example:"11"`
	LinenID    int64  `json:"linenId"    example:"3"`
	Name       string `json:"name"       example:"Sheet"`
	Count      int    `json:"count"      example:"5"`
} // @name LineItemView

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"cart log not found"`
} // @name ErrorResponse

func toCartLogView(v *models.CartLogView) CartLogView {
	out := CartLogView{
		CartLogID:      v.ID,
		ReceiptNumber:  v.ReceiptNumber,
		ReportedWeight: v.ReportedWeight,
		ActualWeight:   v.ActualWeight,
		Comments:       v.Comments,
		DateWeighed:    v.DateWeighed,
		LineItems:      make([]LineItemView, 0, len(v.LineItems)),
	}
	if v.Cart != nil {
		out.Cart = &CartView{CartID: v.Cart.ID, Name: v.Cart.Name, Weight: v.Cart.Weight, Type: v.Cart.Type}
	}
	if v.Location != nil {
		out.Location = &LocationView{LocationID: v.Location.ID, Name: v.Location.Name, Type: v.Location.Type}
	}
	if v.Employee != nil {
		out.Employee = &EmployeeView{EmployeeID: v.Employee.ID, Name: v.Employee.Name}
	}
	for _, item := range v.LineItems {
		out.LineItems = append(out.LineItems, LineItemView{
			LineItemID: item.ID,
			LinenID:    item.LinenID,
			Name:       item.Name,
			Count:      item.Count,
		})
	}
	return out
}
