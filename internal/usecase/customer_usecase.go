package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerID      = errors.New("invalid customer id")
	ErrInvalidCustomerPayload = errors.New("invalid customer payload")
)

// ICustomerUseCase exposes customer registration and reads. Customers are
// immutable after creation; there is no update path.
type ICustomerUseCase interface {
	Register(ctx context.Context, firstName, lastName, email string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Register(ctx context.Context, firstName, lastName, email string) (entities.Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" {
		return entities.Customer{}, ErrInvalidCustomerPayload
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}
