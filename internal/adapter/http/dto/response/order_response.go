package response

import (
	"time"

	"orderdesk/internal/domain/entities"
)

type StatusUpdateResponse struct {
	NewStatus string    `json:"new_status"`
	When      time.Time `json:"when"`
	By        string    `json:"by"`
	Comment   string    `json:"comment"`
}

func fromStatusUpdates(entries []entities.StatusUpdate) []StatusUpdateResponse {
	out := make([]StatusUpdateResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusUpdateResponse{
			NewStatus: e.NewStatus,
			When:      e.When,
			By:        e.By,
			Comment:   e.Comment,
		})
	}
	return out
}

type OrderResponse struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customer_id"`
	Service       string                 `json:"service"`
	Description   string                 `json:"description"`
	Status        string                 `json:"status"`
	UpdateHistory []StatusUpdateResponse `json:"update_history"`
	Created       time.Time              `json:"created"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Service:       string(o.Service),
		Description:   o.Description,
		Status:        string(o.Status),
		UpdateHistory: fromStatusUpdates(o.UpdateHistory),
		Created:       o.Created,
	}
}

func FromOrders(items []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromOrder(o))
	}
	return out
}
