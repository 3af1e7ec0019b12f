package request

import "strings"

// RegisterCustomerRequest is the payload for customer registration.
type RegisterCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

func (r RegisterCustomerRequest) ResolveFirstName() string { return strings.TrimSpace(r.FirstName) }
func (r RegisterCustomerRequest) ResolveLastName() string  { return strings.TrimSpace(r.LastName) }
func (r RegisterCustomerRequest) ResolveEmail() string     { return strings.TrimSpace(r.Email) }
