package request

import "strings"

// CreateQuotationRequest is the payload for manual quotation creation.
// OwnerID is the employee creating the quotation.
type CreateQuotationRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Price   int    `json:"price" binding:"required"`
	Details string `json:"details"`
	OwnerID string `json:"owner_id" binding:"required"`
}

func (r CreateQuotationRequest) ResolveOrderID() string { return strings.TrimSpace(r.OrderID) }
func (r CreateQuotationRequest) ResolveOwnerID() string { return strings.TrimSpace(r.OwnerID) }
