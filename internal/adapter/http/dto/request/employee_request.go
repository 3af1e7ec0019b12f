package request

import "strings"

// RegisterEmployeeRequest is the payload for employee registration.
type RegisterEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

func (r RegisterEmployeeRequest) ResolveFirstName() string { return strings.TrimSpace(r.FirstName) }
func (r RegisterEmployeeRequest) ResolveLastName() string  { return strings.TrimSpace(r.LastName) }
func (r RegisterEmployeeRequest) ResolveEmail() string     { return strings.TrimSpace(r.Email) }
