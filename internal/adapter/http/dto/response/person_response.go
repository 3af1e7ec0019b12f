package response

import "orderdesk/internal/domain/entities"

type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func FromCustomers(items []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCustomer(c))
	}
	return out
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

func FromEmployees(items []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEmployee(e))
	}
	return out
}
