package request

import "strings"

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	Service     string `json:"service" binding:"required"`
	Description string `json:"description"`
}

func (r CreateOrderRequest) ResolveCustomerID() string { return strings.TrimSpace(r.CustomerID) }
func (r CreateOrderRequest) ResolveService() string    { return strings.TrimSpace(r.Service) }

// ActionRequest carries the identity of the user performing a lifecycle
// transition. Author semantics depend on the endpoint: the order owner for
// cancellations, an employee for reviews.
type ActionRequest struct {
	AuthorID string `json:"author_id" binding:"required"`
	Comment  string `json:"comment"`
}

func (r ActionRequest) ResolveAuthorID() string { return strings.TrimSpace(r.AuthorID) }
