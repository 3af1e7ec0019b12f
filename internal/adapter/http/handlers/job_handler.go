package handlers

import (
	"net/http"

	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/infrastructure/dispatch"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errJobNotFound = pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)

// JobStore exposes the dispatcher's job state to the polling endpoint.
type JobStore interface {
	Job(id string) (dispatch.Job, bool)
}

// JobHandler serves the status of queued write operations.

type JobHandler struct {
	jobs JobStore
}

func NewJobHandler(jobs JobStore) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, ok := h.jobs.Job(c.Param("id"))
	if !ok {
		c.JSON(errJobNotFound.HTTPStatus, errJobNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}
