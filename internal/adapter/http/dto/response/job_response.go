package response

import (
	"time"

	"orderdesk/internal/infrastructure/dispatch"
)

// JobAcceptedResponse is returned with 202 Accepted for write operations that
// were queued for asynchronous processing.
type JobAcceptedResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

func AcceptedJob(jobID string) JobAcceptedResponse {
	return JobAcceptedResponse{JobID: jobID, Status: "accepted"}
}

type JobResponse struct {
	ID        string      `json:"id"`
	Task      string      `json:"task"`
	Status    string      `json:"status"`
	Result    interface{} `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	Submitted time.Time   `json:"submitted"`
	Finished  *time.Time  `json:"finished,omitempty"`
}

func FromJob(j dispatch.Job) JobResponse {
	res := JobResponse{
		ID:        j.ID,
		Task:      j.Task,
		Status:    string(j.Status),
		Result:    j.Result,
		Error:     j.Error,
		Submitted: j.Submitted,
	}
	if !j.Finished.IsZero() {
		finished := j.Finished
		res.Finished = &finished
	}
	return res
}
