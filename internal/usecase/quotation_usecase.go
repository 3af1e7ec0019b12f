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
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidQuotationPrice = errors.New("invalid quotation price")
)

// RealisationCreator is the downstream collaborator invoked by the
// accept-quotation cascade. Implemented by RealisationUseCase; the
// realisation's own creation rules apply to cascaded creations too.
type RealisationCreator interface {
	Create(ctx context.Context, orderID, employeeID, createdBy string) (entities.Realisation, error)
}

// IQuotationUseCase implements the quotation half of the lifecycle state
// machine.
//
// quotationUnderReview --validate(employee)--> quotationValidated
// quotationUnderReview --cancel(employee)-->   quotationCancelled
// quotationValidated --accept(order owner)--> quotationAccepted
//
//	[creates a realisation, order -> realisationScheduled]
//
// quotationValidated --reject(order owner)--> quotationRejected
//
//	[order -> orderCancelled]
type IQuotationUseCase interface {
	Create(ctx context.Context, price int, orderID, details, ownerID string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
	Validate(ctx context.Context, quotationID, authorID string) (entities.Quotation, error)
	Cancel(ctx context.Context, quotationID, authorID string) (entities.Quotation, error)
	Accept(ctx context.Context, quotationID, authorID string) (entities.Quotation, error)
	Reject(ctx context.Context, quotationID, authorID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo         interfaces.IQuotationRepository
	orders       interfaces.IOrderRepository
	employees    interfaces.IEmployeeRepository
	guards       *Guards
	realisations RealisationCreator
	assigner     interfaces.IAssignmentStrategy
	logger       *zap.Logger
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)
var _ QuotationCreator = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	orders interfaces.IOrderRepository,
	employees interfaces.IEmployeeRepository,
	guards *Guards,
	realisations RealisationCreator,
	assigner interfaces.IAssignmentStrategy,
	logger *zap.Logger,
) *QuotationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationUseCase{
		repo:         repo,
		orders:       orders,
		employees:    employees,
		guards:       guards,
		realisations: realisations,
		assigner:     assigner,
		logger:       logger,
	}
}

// Create attaches a new quotation to an accepted order. ownerID is empty for
// system-generated quotations (the validate-order cascade) and must resolve
// to an employee when set (manual creation).
func (u *QuotationUseCase) Create(ctx context.Context, price int, orderID, details, ownerID string) (entities.Quotation, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Quotation{}, ErrInvalidOrderID
	}
	if price <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationPrice
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if order.ID == "" {
		return entities.Quotation{}, fmt.Errorf("%w: cannot find order %s", ErrForbidden, orderID)
	}

	if ownerID != "" {
		ok, err := u.guards.IsEmployee(ctx, ownerID)
		if err != nil {
			return entities.Quotation{}, err
		}
		if !ok {
			return entities.Quotation{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, ownerID)
		}
	}

	if order.Status != entities.OrderStatusAccepted {
		return entities.Quotation{}, fmt.Errorf("%w: cannot create a quotation for order %s, incorrect order status %s", ErrForbidden, orderID, order.Status)
	}

	// At most one non-cancelled quotation per order.
	existing, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Quotation{}, err
	}
	for _, q := range existing {
		if q.IsLive() {
			return entities.Quotation{}, fmt.Errorf("%w: order %s already has active quotation %s", ErrForbidden, orderID, q.ID)
		}
	}

	q := entities.Quotation{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Price:         price,
		Details:       details,
		OwnerID:       ownerID,
		Status:        entities.QuotationStatusUnderReview,
		UpdateHistory: []entities.StatusUpdate{},
		Created:       time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	u.logger.Info("quotation created",
		zap.String("quotation_id", created.ID),
		zap.String("order_id", orderID),
		zap.Int("price", price))
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.quotationOf(ctx, strings.TrimSpace(id))
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	return u.repo.List(ctx)
}

// Validate moves the quotation to quotationValidated. Employees only.
func (u *QuotationUseCase) Validate(ctx context.Context, quotationID, authorID string) (entities.Quotation, error) {
	q, err := u.quotationOf(ctx, strings.TrimSpace(quotationID))
	if err != nil {
		return entities.Quotation{}, err
	}

	ok, err := u.guards.IsEmployee(ctx, authorID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !ok {
		return entities.Quotation{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, authorID)
	}
	if q.Status != entities.QuotationStatusUnderReview {
		return entities.Quotation{}, fmt.Errorf("%w: could not validate quotation %s, current status: %s", ErrForbidden, q.ID, q.Status)
	}

	updated, err := u.applyStatus(ctx, q.ID, entities.QuotationStatusValidated, authorID, "")
	if err != nil {
		return entities.Quotation{}, err
	}
	u.logger.Info("quotation validated", zap.String("quotation_id", q.ID), zap.String("author_id", authorID))
	return updated, nil
}

// Cancel moves the quotation to quotationCancelled. Employees only, and only
// while the quotation is still under review.
func (u *QuotationUseCase) Cancel(ctx context.Context, quotationID, authorID string) (entities.Quotation, error) {
	q, err := u.quotationOf(ctx, strings.TrimSpace(quotationID))
	if err != nil {
		return entities.Quotation{}, err
	}

	ok, err := u.guards.IsEmployee(ctx, authorID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !ok {
		return entities.Quotation{}, fmt.Errorf("%w: %s is not a registered employee", ErrForbidden, authorID)
	}
	if q.Status != entities.QuotationStatusUnderReview {
		return entities.Quotation{}, fmt.Errorf("%w: could not cancel quotation %s, current status: %s", ErrInvalidTransition, q.ID, q.Status)
	}

	updated, err := u.applyStatus(ctx, q.ID, entities.QuotationStatusCancelled, authorID, "")
	if err != nil {
		return entities.Quotation{}, err
	}
	u.logger.Info("quotation cancelled", zap.String("quotation_id", q.ID), zap.String("author_id", authorID))
	return updated, nil
}

// Accept moves the quotation to quotationAccepted, schedules a realisation
// for a randomly assigned employee and moves the order to
// realisationScheduled. Only the owner of the parent order may accept.
//
// The cascade runs as independent writes: quotation first, then realisation
// (which itself moves the order), then the order history entry. A failure
// partway leaves the earlier writes committed; each step is logged so a stuck
// saga is diagnosable, and the dispatch layer's retry re-enters through the
// precondition checks.
func (u *QuotationUseCase) Accept(ctx context.Context, quotationID, authorID string) (entities.Quotation, error) {
	q, err := u.quotationOf(ctx, strings.TrimSpace(quotationID))
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := u.requireOrderOwner(ctx, q.OrderID, authorID); err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusValidated {
		return entities.Quotation{}, fmt.Errorf("%w: could not accept quotation %s, current status: %s", ErrInvalidTransition, q.ID, q.Status)
	}

	updated, err := u.applyStatus(ctx, q.ID, entities.QuotationStatusAccepted, authorID, "")
	if err != nil {
		return entities.Quotation{}, err
	}
	u.logger.Info("quotation accepted", zap.String("quotation_id", q.ID), zap.String("author_id", authorID))

	employees, err := u.employees.List(ctx)
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("%w: listing employees for assignment: %v", ErrPersistenceFailure, err)
	}
	assigneeID, err := u.assigner.Pick(employees)
	if err != nil {
		u.logger.Error("realisation assignment failed after quotation accept",
			zap.String("quotation_id", q.ID), zap.Error(err))
		return entities.Quotation{}, fmt.Errorf("%w: assigning realisation for order %s: %v", ErrPersistenceFailure, q.OrderID, err)
	}

	r, err := u.realisations.Create(ctx, q.OrderID, assigneeID, "")
	if err != nil {
		u.logger.Error("realisation creation failed after quotation accept",
			zap.String("quotation_id", q.ID),
			zap.String("order_id", q.OrderID),
			zap.Error(err))
		return entities.Quotation{}, fmt.Errorf("%w: realisation creation for order %s: %v", ErrPersistenceFailure, q.OrderID, err)
	}
	u.logger.Info("realisation scheduled",
		zap.String("realisation_id", r.ID),
		zap.String("order_id", q.OrderID),
		zap.String("employee_id", assigneeID))

	if err := u.updateOrderStatus(ctx, q.OrderID, entities.OrderStatusRealisationScheduled, authorID, "Quotation accepted"); err != nil {
		return entities.Quotation{}, err
	}
	return updated, nil
}

// Reject moves the quotation to quotationRejected and cancels the order.
// Only the owner of the parent order may reject.
func (u *QuotationUseCase) Reject(ctx context.Context, quotationID, authorID string) (entities.Quotation, error) {
	q, err := u.quotationOf(ctx, strings.TrimSpace(quotationID))
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := u.requireOrderOwner(ctx, q.OrderID, authorID); err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusValidated {
		return entities.Quotation{}, fmt.Errorf("%w: could not reject quotation %s, current status: %s", ErrInvalidTransition, q.ID, q.Status)
	}

	updated, err := u.applyStatus(ctx, q.ID, entities.QuotationStatusRejected, authorID, "")
	if err != nil {
		return entities.Quotation{}, err
	}
	u.logger.Info("quotation rejected", zap.String("quotation_id", q.ID), zap.String("author_id", authorID))

	if err := u.updateOrderStatus(ctx, q.OrderID, entities.OrderStatusCancelled, authorID, "Quotation rejected"); err != nil {
		return entities.Quotation{}, err
	}
	return updated, nil
}

// requireOrderOwner resolves the parent order and checks that authorID is its
// owning, still-registered customer.
func (u *QuotationUseCase) requireOrderOwner(ctx context.Context, orderID, authorID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}

	ok, err := u.guards.IsCustomer(ctx, order.CustomerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: customer %s does not exist", ErrForbidden, order.CustomerID)
	}
	if authorID != order.CustomerID {
		return fmt.Errorf("%w: %s is not the owner of order %s", ErrForbidden, authorID, orderID)
	}
	return nil
}

func (u *QuotationUseCase) quotationOf(ctx context.Context, id string) (entities.Quotation, error) {
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, fmt.Errorf("%w: quotation %s", ErrNotFound, id)
	}
	return q, nil
}

func (u *QuotationUseCase) applyStatus(ctx context.Context, id string, status entities.QuotationStatus, authorID, comment string) (entities.Quotation, error) {
	entry := entities.NewStatusUpdate(string(status), authorID, comment)
	updated, err := u.repo.UpdateStatus(ctx, id, status, entry)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, fmt.Errorf("%w: quotation %s", ErrPersistenceFailure, id)
	}
	return updated, nil
}

func (u *QuotationUseCase) updateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, authorID, comment string) error {
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
