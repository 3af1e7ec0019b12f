package interfaces

import (
	"context"

	"orderdesk/internal/domain/entities"
)

// IRealisationRepository abstracts DynamoDB persistence for Realisation.
type IRealisationRepository interface {
	Create(ctx context.Context, r entities.Realisation) (entities.Realisation, error)
	GetByID(ctx context.Context, id string) (entities.Realisation, error)
	List(ctx context.Context) ([]entities.Realisation, error)
	UpdateStatus(ctx context.Context, id string, status entities.RealisationStatus, entry entities.StatusUpdate) (entities.Realisation, error)
}
