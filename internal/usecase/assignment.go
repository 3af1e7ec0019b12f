package usecase

import (
	"errors"
	"math/rand"

	"orderdesk/internal/domain/entities"
	"orderdesk/internal/usecase/interfaces"
)

var ErrNoEmployeesAvailable = errors.New("no employees available for assignment")

// RandomAssignment picks a realisation assignee uniformly at random.
// Swap the strategy at wiring time for load-aware assignment without touching
// the lifecycle logic.
type RandomAssignment struct{}

var _ interfaces.IAssignmentStrategy = (*RandomAssignment)(nil)

func NewRandomAssignment() *RandomAssignment {
	return &RandomAssignment{}
}

func (*RandomAssignment) Pick(employees []entities.Employee) (string, error) {
	if len(employees) == 0 {
		return "", ErrNoEmployeesAvailable
	}
	return employees[rand.Intn(len(employees))].ID, nil
}
