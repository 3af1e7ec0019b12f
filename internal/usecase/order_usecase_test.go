package usecase

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/domain/entities"
	mock_interfaces "orderdesk/internal/usecase/interfaces/mocks"
	mock_usecase "orderdesk/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	orders     *mock_interfaces.MockIOrderRepository
	customers  *mock_interfaces.MockICustomerRepository
	employees  *mock_interfaces.MockIEmployeeRepository
	quotations *mock_usecase.MockQuotationCreator
	uc         *OrderUseCase
}

func newOrderFixture(t *testing.T) *orderFixture {
	ctrl := gomock.NewController(t)
	f := &orderFixture{
		orders:     mock_interfaces.NewMockIOrderRepository(ctrl),
		customers:  mock_interfaces.NewMockICustomerRepository(ctrl),
		employees:  mock_interfaces.NewMockIEmployeeRepository(ctrl),
		quotations: mock_usecase.NewMockQuotationCreator(ctrl),
	}
	guards := NewGuards(f.customers, f.employees, f.orders)
	f.uc = NewOrderUseCase(f.orders, guards, f.quotations, nil)
	return f
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("unknown customer is forbidden", func(t *testing.T) {
		f := newOrderFixture(t)
		f.customers.EXPECT().Exists(gomock.Any(), "c-1").Return(false, nil)

		_, err := f.uc.Create(context.Background(), "c-1", entities.ServiceWebSite, "company site")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid service", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.uc.Create(context.Background(), "c-1", entities.Service("spaceship"), "")
		if !errors.Is(err, ErrInvalidOrderService) {
			t.Fatalf("expected ErrInvalidOrderService, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newOrderFixture(t)
		f.customers.EXPECT().Exists(gomock.Any(), "c-1").Return(true, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.CustomerID != "c-1" || o.Service != entities.ServiceWebSite {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusUnderReview {
					t.Fatalf("expected underReview, got %s", o.Status)
				}
				if o.UpdateHistory == nil || len(o.UpdateHistory) != 0 {
					t.Fatalf("expected empty history, got %+v", o.UpdateHistory)
				}
				if o.Created.IsZero() {
					t.Fatalf("expected created timestamp")
				}
				return o, nil
			},
		)

		o, err := f.uc.Create(context.Background(), " c-1 ", entities.ServiceWebSite, "company site")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	order := entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Service:    entities.ServiceWebSite,
		Status:     entities.OrderStatusUnderReview,
	}

	t.Run("order not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := f.uc.Cancel(context.Background(), "o-1", "c-1", "changed my mind")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("author is not a customer", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.customers.EXPECT().Exists(gomock.Any(), "e-1").Return(false, nil)

		_, err := f.uc.Cancel(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("author is not the owner", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.customers.EXPECT().Exists(gomock.Any(), "c-2").Return(true, nil)

		_, err := f.uc.Cancel(context.Background(), "o-1", "c-2", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("too late to cancel", func(t *testing.T) {
		for _, status := range []entities.OrderStatus{
			entities.OrderStatusRealisationScheduled,
			entities.OrderStatusRealisationStarted,
			entities.OrderStatusRealisationCompleted,
			entities.OrderStatusCancelled,
		} {
			f := newOrderFixture(t)
			late := order
			late.Status = status
			f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(late, nil)
			f.customers.EXPECT().Exists(gomock.Any(), "c-1").Return(true, nil)

			_, err := f.uc.Cancel(context.Background(), "o-1", "c-1", "")
			if !errors.Is(err, ErrForbidden) {
				t.Fatalf("status %s: expected ErrForbidden, got %v", status, err)
			}
		}
	})

	t.Run("update reports no change", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.customers.EXPECT().Exists(gomock.Any(), "c-1").Return(true, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCancelled, gomock.Any()).
			Return(entities.Order{}, nil)

		_, err := f.uc.Cancel(context.Background(), "o-1", "c-1", "")
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("success appends history", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.customers.EXPECT().Exists(gomock.Any(), "c-1").Return(true, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCancelled, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				if entry.NewStatus != string(entities.OrderStatusCancelled) || entry.By != "c-1" || entry.Comment != "changed my mind" {
					t.Fatalf("unexpected history entry: %+v", entry)
				}
				if entry.When.IsZero() {
					t.Fatalf("expected entry timestamp")
				}
				updated := order
				updated.Status = status
				updated.UpdateHistory = append(updated.UpdateHistory, entry)
				return updated, nil
			},
		)

		updated, err := f.uc.Cancel(context.Background(), "o-1", "c-1", "changed my mind")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected orderCancelled, got %s", updated.Status)
		}
	})
}

func TestOrderUseCase_Validate(t *testing.T) {
	order := entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Service:    entities.ServiceMobileApp,
		Status:     entities.OrderStatusUnderReview,
	}

	t.Run("author is not an employee", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "c-1").Return(false, nil)

		_, err := f.uc.Validate(context.Background(), "o-1", "c-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already accepted fails and creates no quotation", func(t *testing.T) {
		f := newOrderFixture(t)
		accepted := order
		accepted.Status = entities.OrderStatusAccepted
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(accepted, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)

		_, err := f.uc.Validate(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success generates quotation at tier price", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusAccepted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				updated := order
				updated.Status = status
				return updated, nil
			},
		)
		f.quotations.EXPECT().Create(gomock.Any(), 8000, "o-1", "Generated", "").
			Return(entities.Quotation{ID: "q-1", OrderID: "o-1", Price: 8000, Status: entities.QuotationStatusUnderReview}, nil)

		updated, err := f.uc.Validate(context.Background(), "o-1", "e-1", "looks good")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusAccepted {
			t.Fatalf("expected orderAccepted, got %s", updated.Status)
		}
	})

	t.Run("quotation creation fails, order stays accepted", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusAccepted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				updated := order
				updated.Status = status
				return updated, nil
			},
		)
		f.quotations.EXPECT().Create(gomock.Any(), 8000, "o-1", "Generated", "").
			Return(entities.Quotation{}, errors.New("db"))

		// No compensation: the order status change is not rolled back, the
		// failure surfaces as a persistence failure for the dispatcher to retry.
		_, err := f.uc.Validate(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestOrderUseCase_Reject(t *testing.T) {
	order := entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Service:    entities.ServiceWebSite,
		Status:     entities.OrderStatusUnderReview,
	}

	t.Run("wrong status", func(t *testing.T) {
		f := newOrderFixture(t)
		rejected := order
		rejected.Status = entities.OrderStatusRejected
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(rejected, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)

		_, err := f.uc.Reject(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusRejected, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				updated := order
				updated.Status = status
				return updated, nil
			},
		)

		updated, err := f.uc.Reject(context.Background(), "o-1", "e-1", "out of scope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusRejected {
			t.Fatalf("expected orderRejected, got %s", updated.Status)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.Order{}, nil)

		_, err := f.uc.GetByID(context.Background(), "o-404")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
