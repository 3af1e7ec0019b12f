package interfaces

import (
	"context"

	"orderdesk/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdateStatus sets the status and appends the history entry in one write.
// It returns the post-update order, zero-valued when the order does not exist
// (the write reported no change).
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error)
}
