package entities

import "time"

// RealisationStatus represents the lifecycle of a realisation.
//
// realisationScheduled -> realisationStarted -> realisationCompleted
type RealisationStatus string

const (
	RealisationStatusScheduled RealisationStatus = "realisationScheduled"
	RealisationStatusStarted   RealisationStatus = "realisationStarted"
	RealisationStatusCompleted RealisationStatus = "realisationCompleted"
)

var realisationTransitions = map[RealisationStatus][]RealisationStatus{
	RealisationStatusScheduled: {RealisationStatusStarted},
	RealisationStatusStarted:   {RealisationStatusCompleted},
	RealisationStatusCompleted: nil,
}

func (s RealisationStatus) IsValid() bool {
	_, ok := realisationTransitions[s]
	return ok
}

func (s RealisationStatus) CanTransitionTo(next RealisationStatus) bool {
	for _, allowed := range realisationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Realisation is the work assignment executing an accepted quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EmployeeID is the assigned worker; only the assignee may start or complete
// the realisation. CreatedBy is the employee who created the realisation
// manually; it is empty when the realisation was scheduled by a quotation
// acceptance. An order gets at most one realisation.
type Realisation struct {
	ID             string            `json:"id"`
	OrderID        string            `json:"order_id"`
	EmployeeID     string            `json:"employee_id"`
	CreatedBy      string            `json:"created_by,omitempty"`
	Status         RealisationStatus `json:"status"`
	AssignmentDate time.Time         `json:"assignment_date"`
	UpdateHistory  []StatusUpdate    `json:"update_history"`
}
