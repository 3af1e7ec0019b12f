package interfaces

import (
	"context"

	"orderdesk/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// ListByOrderID returns every quotation ever attached to the order, cancelled
// ones included; the one-live-quotation rule is enforced by the use case.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus, entry entities.StatusUpdate) (entities.Quotation, error)
}
