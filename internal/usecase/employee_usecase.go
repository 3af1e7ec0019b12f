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
	ErrInvalidEmployeeID      = errors.New("invalid employee id")
	ErrInvalidEmployeePayload = errors.New("invalid employee payload")
)

// IEmployeeUseCase exposes employee registration and reads.
type IEmployeeUseCase interface {
	Register(ctx context.Context, firstName, lastName, email string) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Register(ctx context.Context, firstName, lastName, email string) (entities.Employee, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" {
		return entities.Employee{}, ErrInvalidEmployeePayload
	}

	e := entities.Employee{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, fmt.Errorf("%w: employee %s", ErrNotFound, id)
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}
