package entities

import "time"

// StatusUpdate is a single entry of a lifecycle entity's status history.
// Histories are append-only; insertion order is chronological order.
type StatusUpdate struct {
	NewStatus string    `json:"new_status"`
	When      time.Time `json:"when"`
	By        string    `json:"by"`
	Comment   string    `json:"comment"`
}

func NewStatusUpdate(newStatus, by, comment string) StatusUpdate {
	return StatusUpdate{
		NewStatus: newStatus,
		When:      time.Now().UTC(),
		By:        by,
		Comment:   comment,
	}
}
