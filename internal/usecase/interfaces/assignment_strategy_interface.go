package interfaces

import "orderdesk/internal/domain/entities"

// IAssignmentStrategy picks the employee a new realisation is assigned to.
// Implementations must not mutate the candidate slice.
type IAssignmentStrategy interface {
	Pick(employees []entities.Employee) (string, error)
}
