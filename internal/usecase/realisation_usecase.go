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

var ErrInvalidRealisationID = errors.New("invalid realisation id")

// IRealisationUseCase implements the realisation half of the lifecycle state
// machine.
//
// realisationScheduled --start(assignee)-->    realisationStarted
//
//	[order -> realisationStarted]
//
// realisationStarted --complete(assignee)--> realisationCompleted
//
//	[order -> realisationCompleted]
type IRealisationUseCase interface {
	Create(ctx context.Context, orderID, employeeID, createdBy string) (entities.Realisation, error)
	GetByID(ctx context.Context, id string) (entities.Realisation, error)
	List(ctx context.Context) ([]entities.Realisation, error)
	Start(ctx context.Context, realisationID, authorID string) (entities.Realisation, error)
	Complete(ctx context.Context, realisationID, authorID string) (entities.Realisation, error)
}

type RealisationUseCase struct {
	repo       interfaces.IRealisationRepository
	orders     interfaces.IOrderRepository
	quotations interfaces.IQuotationRepository
	guards     *Guards
	logger     *zap.Logger
}

var _ IRealisationUseCase = (*RealisationUseCase)(nil)
var _ RealisationCreator = (*RealisationUseCase)(nil)

func NewRealisationUseCase(
	repo interfaces.IRealisationRepository,
	orders interfaces.IOrderRepository,
	quotations interfaces.IQuotationRepository,
	guards *Guards,
	logger *zap.Logger,
) *RealisationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RealisationUseCase{repo: repo, orders: orders, quotations: quotations, guards: guards, logger: logger}
}

// Create schedules a realisation for an accepted order that has an accepted
// quotation, and moves the order to realisationScheduled. createdBy is empty
// when the realisation is scheduled by the accept-quotation cascade and must
// resolve to an employee when set (manual creation).
func (u *RealisationUseCase) Create(ctx context.Context, orderID, employeeID, createdBy string) (entities.Realisation, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Realisation{}, ErrInvalidOrderID
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return entities.Realisation{}, ErrInvalidEmployeeID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Realisation{}, err
	}
	if order.ID == "" {
		return entities.Realisation{}, fmt.Errorf("%w: order %s does not exist", ErrForbidden, orderID)
	}
	if order.Status != entities.OrderStatusAccepted {
		return entities.Realisation{}, fmt.Errorf("%w: order %s status is %s", ErrForbidden, orderID, order.Status)
	}

	quotations, err := u.quotations.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Realisation{}, err
	}
	accepted := false
	for _, q := range quotations {
		if q.Status == entities.QuotationStatusAccepted {
			accepted = true
			break
		}
	}
	if !accepted {
		return entities.Realisation{}, fmt.Errorf("%w: order %s does not have an accepted quotation", ErrForbidden, orderID)
	}

	if createdBy != "" {
		ok, err := u.guards.IsEmployee(ctx, createdBy)
		if err != nil {
			return entities.Realisation{}, err
		}
		if !ok {
			return entities.Realisation{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, createdBy)
		}
	}

	r := entities.Realisation{
		ID:             uuid.NewString(),
		OrderID:        orderID,
		EmployeeID:     employeeID,
		CreatedBy:      createdBy,
		Status:         entities.RealisationStatusScheduled,
		AssignmentDate: time.Now().UTC(),
		UpdateHistory:  []entities.StatusUpdate{},
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Realisation{}, err
	}
	u.logger.Info("realisation created",
		zap.String("realisation_id", created.ID),
		zap.String("order_id", orderID),
		zap.String("employee_id", employeeID))

	if err := u.updateOrderStatus(ctx, orderID, entities.OrderStatusRealisationScheduled, createdBy, ""); err != nil {
		return entities.Realisation{}, err
	}
	return created, nil
}

func (u *RealisationUseCase) GetByID(ctx context.Context, id string) (entities.Realisation, error) {
	return u.realisationOf(ctx, strings.TrimSpace(id))
}

func (u *RealisationUseCase) List(ctx context.Context) ([]entities.Realisation, error) {
	return u.repo.List(ctx)
}

// Start moves the realisation to realisationStarted and the order to
// realisationStarted. Only the assigned employee may start.
func (u *RealisationUseCase) Start(ctx context.Context, realisationID, authorID string) (entities.Realisation, error) {
	r, err := u.realisationOf(ctx, strings.TrimSpace(realisationID))
	if err != nil {
		return entities.Realisation{}, err
	}
	if r.Status != entities.RealisationStatusScheduled {
		return entities.Realisation{}, fmt.Errorf("%w: could not start realisation %s, current status: %s", ErrInvalidTransition, r.ID, r.Status)
	}
	if err := u.requireAssignee(ctx, r, authorID); err != nil {
		return entities.Realisation{}, err
	}

	updated, err := u.applyStatus(ctx, r.ID, entities.RealisationStatusStarted, authorID)
	if err != nil {
		return entities.Realisation{}, err
	}
	u.logger.Info("realisation started", zap.String("realisation_id", r.ID), zap.String("author_id", authorID))

	if err := u.updateOrderStatus(ctx, r.OrderID, entities.OrderStatusRealisationStarted, authorID, ""); err != nil {
		return entities.Realisation{}, err
	}
	return updated, nil
}

// Complete moves the realisation to realisationCompleted and the order to
// realisationCompleted. Only the assigned employee may complete.
func (u *RealisationUseCase) Complete(ctx context.Context, realisationID, authorID string) (entities.Realisation, error) {
	r, err := u.realisationOf(ctx, strings.TrimSpace(realisationID))
	if err != nil {
		return entities.Realisation{}, err
	}
	if r.Status != entities.RealisationStatusStarted {
		return entities.Realisation{}, fmt.Errorf("%w: could not complete realisation %s, current status: %s", ErrInvalidTransition, r.ID, r.Status)
	}
	if err := u.requireAssignee(ctx, r, authorID); err != nil {
		return entities.Realisation{}, err
	}

	updated, err := u.applyStatus(ctx, r.ID, entities.RealisationStatusCompleted, authorID)
	if err != nil {
		return entities.Realisation{}, err
	}
	u.logger.Info("realisation completed", zap.String("realisation_id", r.ID), zap.String("author_id", authorID))

	if err := u.updateOrderStatus(ctx, r.OrderID, entities.OrderStatusRealisationCompleted, authorID, ""); err != nil {
		return entities.Realisation{}, err
	}
	return updated, nil
}

// requireAssignee checks that authorID is a registered employee and the
// realisation's assigned worker.
func (u *RealisationUseCase) requireAssignee(ctx context.Context, r entities.Realisation, authorID string) error {
	if authorID == "" {
		return fmt.Errorf("%w: missing author id for realisation %s", ErrForbidden, r.ID)
	}
	ok, err := u.guards.IsEmployee(ctx, authorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, authorID)
	}
	if authorID != r.EmployeeID {
		return fmt.Errorf("%w: %s is not the assignee of realisation %s", ErrForbidden, authorID, r.ID)
	}
	return nil
}

func (u *RealisationUseCase) realisationOf(ctx context.Context, id string) (entities.Realisation, error) {
	if id == "" {
		return entities.Realisation{}, ErrInvalidRealisationID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Realisation{}, err
	}
	if r.ID == "" {
		return entities.Realisation{}, fmt.Errorf("%w: realisation %s", ErrNotFound, id)
	}
	return r, nil
}

func (u *RealisationUseCase) applyStatus(ctx context.Context, id string, status entities.RealisationStatus, authorID string) (entities.Realisation, error) {
	entry := entities.NewStatusUpdate(string(status), authorID, "")
	updated, err := u.repo.UpdateStatus(ctx, id, status, entry)
	if err != nil {
		return entities.Realisation{}, err
	}
	if updated.ID == "" {
		return entities.Realisation{}, fmt.Errorf("%w: realisation %s", ErrPersistenceFailure, id)
	}
	return updated, nil
}

func (u *RealisationUseCase) updateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, authorID, comment string) error {
	entry := entities.NewStatusUpdate(string(status), authorID, comment)
	updated, err := u.orders.UpdateStatus(ctx, orderID, status, entry)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		u.logger.Error("order status cascade failed",
			zap.String("order_id", orderID),
			zap.String("target_status", string(status)))
		return fmt.Errorf("%w: order %s status update to %s", ErrPersistenceFailure, orderID, status)
	}
	return nil
}
