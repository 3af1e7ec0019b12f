package response

import (
	"time"

	"orderdesk/internal/domain/entities"
)

type RealisationResponse struct {
	ID             string                 `json:"id"`
	OrderID        string                 `json:"order_id"`
	EmployeeID     string                 `json:"employee_id"`
	CreatedBy      string                 `json:"created_by,omitempty"`
	Status         string                 `json:"status"`
	AssignmentDate time.Time              `json:"assignment_date"`
	UpdateHistory  []StatusUpdateResponse `json:"update_history"`
}

func FromRealisation(r entities.Realisation) RealisationResponse {
	return RealisationResponse{
		ID:             r.ID,
		OrderID:        r.OrderID,
		EmployeeID:     r.EmployeeID,
		CreatedBy:      r.CreatedBy,
		Status:         string(r.Status),
		AssignmentDate: r.AssignmentDate,
		UpdateHistory:  fromStatusUpdates(r.UpdateHistory),
	}
}

func FromRealisations(items []entities.Realisation) []RealisationResponse {
	out := make([]RealisationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRealisation(r))
	}
	return out
}
