package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidOrderService = errors.New("invalid order service")
)

// Statuses in which a cancel request arrives too late.
var nonCancellableOrderStatuses = map[entities.OrderStatus]bool{
	entities.OrderStatusRealisationScheduled: true,
	entities.OrderStatusRealisationStarted:   true,
	entities.OrderStatusRealisationCompleted: true,
	entities.OrderStatusCancelled:            true,
}

// QuotationCreator is the downstream collaborator invoked by the
// validate-order cascade. Implemented by QuotationUseCase; the quotation's
// own creation rules apply to cascaded creations too.
type QuotationCreator interface {
	Create(ctx context.Context, price int, orderID, details, ownerID string) (entities.Quotation, error)
}

// IOrderUseCase implements the order half of the lifecycle state machine.
//
// underReview --validate(employee)--> orderAccepted   [creates a quotation]
// underReview --reject(employee)-->   orderRejected
// underReview/orderAccepted --cancel(owning customer)--> orderCancelled
//
// The realisationScheduled/Started/Completed statuses are only ever set by
// quotation and realisation cascades, never by a direct order operation.
type IOrderUseCase interface {
	Create(ctx context.Context, customerID string, service entities.Service, description string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Cancel(ctx context.Context, orderID, authorID, comment string) (entities.Order, error)
	Validate(ctx context.Context, orderID, authorID, comment string) (entities.Order, error)
	Reject(ctx context.Context, orderID, authorID, comment string) (entities.Order, error)
}

type OrderUseCase struct {
	repo       interfaces.IOrderRepository
	guards     *Guards
	quotations QuotationCreator
	logger     *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	guards *Guards,
	quotations QuotationCreator,
	logger *zap.Logger,
) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, guards: guards, quotations: quotations, logger: logger}
}

func (u *OrderUseCase) Create(ctx context.Context, customerID string, service entities.Service, description string) (entities.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}
	if !service.IsValid() {
		return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidOrderService, service)
	}

	ok, err := u.guards.IsCustomer(ctx, customerID)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s is not a registered customer", ErrForbidden, customerID)
	}

	o := entities.Order{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Service:       service,
		Description:   description,
		Status:        entities.OrderStatusUnderReview,
		UpdateHistory: []entities.StatusUpdate{},
		Created:       time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("customer_id", customerID),
		zap.String("service", string(service)))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return u.orderOf(ctx, strings.TrimSpace(id))
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

// Cancel moves the order to orderCancelled. Only the owning customer may
// cancel, and only before a realisation has been scheduled.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, authorID, comment string) (entities.Order, error) {
	o, err := u.orderOf(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return entities.Order{}, err
	}

	ok, err := u.guards.IsCustomer(ctx, authorID)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s is not a registered customer", ErrForbidden, authorID)
	}
	if authorID != o.CustomerID {
		return entities.Order{}, fmt.Errorf("%w: %s is not the owner of order %s", ErrForbidden, authorID, o.ID)
	}
	if nonCancellableOrderStatuses[o.Status] {
		return entities.Order{}, fmt.Errorf("%w: could not cancel order %s, current status: %s", ErrForbidden, o.ID, o.Status)
	}

	updated, err := u.applyStatus(ctx, o.ID, entities.OrderStatusCancelled, authorID, comment)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order cancelled", zap.String("order_id", o.ID), zap.String("author_id", authorID))
	return updated, nil
}

// Validate moves the order to orderAccepted and generates a quotation at the
// service tier price. The quotation creation is a cascade step: when it fails
// the order stays orderAccepted with no quotation attached (no compensation),
// and the failure is surfaced so the dispatch layer can retry.
func (u *OrderUseCase) Validate(ctx context.Context, orderID, authorID, comment string) (entities.Order, error) {
	o, err := u.orderOf(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return entities.Order{}, err
	}

	ok, err := u.guards.IsEmployee(ctx, authorID)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, authorID)
	}
	if o.Status != entities.OrderStatusUnderReview {
		return entities.Order{}, fmt.Errorf("%w: could not validate order %s, current status: %s", ErrInvalidTransition, o.ID, o.Status)
	}

	updated, err := u.applyStatus(ctx, o.ID, entities.OrderStatusAccepted, authorID, comment)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order validated", zap.String("order_id", o.ID), zap.String("author_id", authorID))

	q, err := u.quotations.Create(ctx, o.Service.Price(), o.ID, "Generated", "")
	if err != nil {
		u.logger.Error("quotation generation failed after order validation; order left orderAccepted without quotation",
			zap.String("order_id", o.ID),
			zap.Error(err))
		return entities.Order{}, fmt.Errorf("%w: quotation generation for order %s: %v", ErrPersistenceFailure, o.ID, err)
	}
	u.logger.Info("quotation generated",
		zap.String("order_id", o.ID),
		zap.String("quotation_id", q.ID),
		zap.Int("price", q.Price))
	return updated, nil
}

// Reject moves the order to orderRejected. Employees only, underReview only.
func (u *OrderUseCase) Reject(ctx context.Context, orderID, authorID, comment string) (entities.Order, error) {
	o, err := u.orderOf(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return entities.Order{}, err
	}

	ok, err := u.guards.IsEmployee(ctx, authorID)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, authorID)
	}
	if o.Status != entities.OrderStatusUnderReview {
		return entities.Order{}, fmt.Errorf("%w: could not reject order %s, current status: %s", ErrInvalidTransition, o.ID, o.Status)
	}

	updated, err := u.applyStatus(ctx, o.ID, entities.OrderStatusRejected, authorID, comment)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order rejected", zap.String("order_id", o.ID), zap.String("author_id", authorID))
	return updated, nil
}

func (u *OrderUseCase) orderOf(ctx context.Context, id string) (entities.Order, error) {
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return o, nil
}

func (u *OrderUseCase) applyStatus(ctx context.Context, id string, status entities.OrderStatus, authorID, comment string) (entities.Order, error) {
	entry := entities.NewStatusUpdate(string(status), authorID, comment)
	updated, err := u.repo.UpdateStatus(ctx, id, status, entry)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: order %s", ErrPersistenceFailure, id)
	}
	return updated, nil
}
