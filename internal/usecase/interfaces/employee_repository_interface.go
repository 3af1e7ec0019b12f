package interfaces

import (
	"context"

	"orderdesk/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
}
