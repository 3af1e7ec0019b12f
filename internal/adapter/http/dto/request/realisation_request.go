package request

import "strings"

// CreateRealisationRequest is the payload for manual realisation scheduling.
// CreatedBy is the employee scheduling the work; EmployeeID the assignee.
type CreateRealisationRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	CreatedBy  string `json:"created_by" binding:"required"`
}

func (r CreateRealisationRequest) ResolveOrderID() string    { return strings.TrimSpace(r.OrderID) }
func (r CreateRealisationRequest) ResolveEmployeeID() string { return strings.TrimSpace(r.EmployeeID) }
func (r CreateRealisationRequest) ResolveCreatedBy() string  { return strings.TrimSpace(r.CreatedBy) }
