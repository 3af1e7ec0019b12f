package response

import (
	"time"

	"orderdesk/internal/domain/entities"
)

type QuotationResponse struct {
	ID            string                 `json:"id"`
	OrderID       string                 `json:"order_id"`
	Price         int                    `json:"price"`
	Details       string                 `json:"details"`
	OwnerID       string                 `json:"owner_id,omitempty"`
	Status        string                 `json:"status"`
	UpdateHistory []StatusUpdateResponse `json:"update_history"`
	Created       time.Time              `json:"created"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:            q.ID,
		OrderID:       q.OrderID,
		Price:         q.Price,
		Details:       q.Details,
		OwnerID:       q.OwnerID,
		Status:        string(q.Status),
		UpdateHistory: fromStatusUpdates(q.UpdateHistory),
		Created:       q.Created,
	}
}

func FromQuotations(items []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuotation(q))
	}
	return out
}
