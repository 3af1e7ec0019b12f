package usecase

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/domain/entities"
	mock_interfaces "orderdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type realisationFixture struct {
	realisations *mock_interfaces.MockIRealisationRepository
	orders       *mock_interfaces.MockIOrderRepository
	quotations   *mock_interfaces.MockIQuotationRepository
	customers    *mock_interfaces.MockICustomerRepository
	employees    *mock_interfaces.MockIEmployeeRepository
	uc           *RealisationUseCase
}

func newRealisationFixture(t *testing.T) *realisationFixture {
	ctrl := gomock.NewController(t)
	f := &realisationFixture{
		realisations: mock_interfaces.NewMockIRealisationRepository(ctrl),
		orders:       mock_interfaces.NewMockIOrderRepository(ctrl),
		quotations:   mock_interfaces.NewMockIQuotationRepository(ctrl),
		customers:    mock_interfaces.NewMockICustomerRepository(ctrl),
		employees:    mock_interfaces.NewMockIEmployeeRepository(ctrl),
	}
	guards := NewGuards(f.customers, f.employees, f.orders)
	f.uc = NewRealisationUseCase(f.realisations, f.orders, f.quotations, guards, nil)
	return f
}

func TestRealisationUseCase_Create(t *testing.T) {
	order := entities.Order{ID: "o-1", CustomerID: "c-1", Status: entities.OrderStatusAccepted}
	acceptedQuotations := []entities.Quotation{
		{ID: "q-0", OrderID: "o-1", Status: entities.QuotationStatusCancelled},
		{ID: "q-1", OrderID: "o-1", Status: entities.QuotationStatusAccepted},
	}

	t.Run("order does not exist", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.Order{}, nil)

		_, err := f.uc.Create(context.Background(), "o-404", "e-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("order not accepted", func(t *testing.T) {
		f := newRealisationFixture(t)
		pending := order
		pending.Status = entities.OrderStatusUnderReview
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(pending, nil)

		_, err := f.uc.Create(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("no accepted quotation", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.quotations.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.Quotation{
			{ID: "q-1", OrderID: "o-1", Status: entities.QuotationStatusValidated},
		}, nil)

		_, err := f.uc.Create(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("manual creator must be an employee", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.quotations.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(acceptedQuotations, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "x-1").Return(false, nil)

		_, err := f.uc.Create(context.Background(), "o-1", "e-1", "x-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("order update failure after create", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.quotations.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(acceptedQuotations, nil)
		f.realisations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Realisation{})).DoAndReturn(
			func(_ context.Context, r entities.Realisation) (entities.Realisation, error) { return r, nil },
		)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusRealisationScheduled, gomock.Any()).
			Return(entities.Order{}, nil)

		_, err := f.uc.Create(context.Background(), "o-1", "e-1", "")
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("success schedules work and moves order", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		f.quotations.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(acceptedQuotations, nil)
		f.realisations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Realisation{})).DoAndReturn(
			func(_ context.Context, r entities.Realisation) (entities.Realisation, error) {
				if r.ID == "" || r.OrderID != "o-1" || r.EmployeeID != "e-1" || r.CreatedBy != "" {
					t.Fatalf("unexpected realisation: %+v", r)
				}
				if r.Status != entities.RealisationStatusScheduled {
					t.Fatalf("expected realisationScheduled, got %s", r.Status)
				}
				if r.AssignmentDate.IsZero() {
					t.Fatalf("expected assignment date")
				}
				return r, nil
			},
		)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusRealisationScheduled, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				o := order
				o.Status = status
				return o, nil
			},
		)

		r, err := f.uc.Create(context.Background(), "o-1", "e-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestRealisationUseCase_Start(t *testing.T) {
	scheduled := entities.Realisation{ID: "r-1", OrderID: "o-1", EmployeeID: "e-1", Status: entities.RealisationStatusScheduled}

	t.Run("wrong status", func(t *testing.T) {
		f := newRealisationFixture(t)
		started := scheduled
		started.Status = entities.RealisationStatusStarted
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(started, nil)

		_, err := f.uc.Start(context.Background(), "r-1", "e-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing author", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(scheduled, nil)

		_, err := f.uc.Start(context.Background(), "r-1", "")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("only the assignee may start", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(scheduled, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-2").Return(true, nil)

		_, err := f.uc.Start(context.Background(), "r-1", "e-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success moves order to realisationStarted", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(scheduled, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)
		f.realisations.EXPECT().UpdateStatus(gomock.Any(), "r-1", entities.RealisationStatusStarted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.RealisationStatus, entry entities.StatusUpdate) (entities.Realisation, error) {
				updated := scheduled
				updated.Status = status
				return updated, nil
			},
		)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusRealisationStarted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				return entities.Order{ID: id, Status: status}, nil
			},
		)

		r, err := f.uc.Start(context.Background(), "r-1", "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RealisationStatusStarted {
			t.Fatalf("expected realisationStarted, got %s", r.Status)
		}
	})
}

func TestRealisationUseCase_Complete(t *testing.T) {
	started := entities.Realisation{ID: "r-1", OrderID: "o-1", EmployeeID: "e-1", Status: entities.RealisationStatusStarted}

	t.Run("not started yet", func(t *testing.T) {
		f := newRealisationFixture(t)
		scheduled := started
		scheduled.Status = entities.RealisationStatusScheduled
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(scheduled, nil)

		_, err := f.uc.Complete(context.Background(), "r-1", "e-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success moves order to realisationCompleted", func(t *testing.T) {
		f := newRealisationFixture(t)
		f.realisations.EXPECT().GetByID(gomock.Any(), "r-1").Return(started, nil)
		f.employees.EXPECT().Exists(gomock.Any(), "e-1").Return(true, nil)
		f.realisations.EXPECT().UpdateStatus(gomock.Any(), "r-1", entities.RealisationStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.RealisationStatus, entry entities.StatusUpdate) (entities.Realisation, error) {
				updated := started
				updated.Status = status
				return updated, nil
			},
		)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusRealisationCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, status entities.OrderStatus, entry entities.StatusUpdate) (entities.Order, error) {
				return entities.Order{ID: id, Status: status}, nil
			},
		)

		r, err := f.uc.Complete(context.Background(), "r-1", "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RealisationStatusCompleted {
			t.Fatalf("expected realisationCompleted, got %s", r.Status)
		}
	})
}
