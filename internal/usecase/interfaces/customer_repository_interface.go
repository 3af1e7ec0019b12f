package interfaces

import (
	"context"

	"orderdesk/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// GetByID returns a zero-valued Customer when the id does not resolve.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
}
