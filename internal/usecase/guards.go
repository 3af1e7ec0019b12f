package usecase

import (
	"context"

	"orderdesk/internal/usecase/interfaces"
)

// Guards bundles the existence predicates gating lifecycle transitions.
// The predicates only report facts; translating a false result into a
// Forbidden or NotFound outcome is the calling use case's job, so
// authorization policy and status policy meet in exactly one place.
type Guards struct {
	customers interfaces.ICustomerRepository
	employees interfaces.IEmployeeRepository
	orders    interfaces.IOrderRepository
}

func NewGuards(
	customers interfaces.ICustomerRepository,
	employees interfaces.IEmployeeRepository,
	orders interfaces.IOrderRepository,
) *Guards {
	return &Guards{customers: customers, employees: employees, orders: orders}
}

// IsCustomer reports whether id belongs to a registered customer.
func (g *Guards) IsCustomer(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	return g.customers.Exists(ctx, id)
}

// IsEmployee reports whether id belongs to a registered employee.
func (g *Guards) IsEmployee(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	return g.employees.Exists(ctx, id)
}

// OrderExists reports whether an order with the given id exists.
func (g *Guards) OrderExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	return g.orders.Exists(ctx, id)
}
