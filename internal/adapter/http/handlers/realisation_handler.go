package handlers

import (
	"net/http"

	request "orderdesk/internal/adapter/http/dto/request"
	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRealisationPayload = pkg.NewDomainErrorSimple("INVALID_REALISATION_INPUT", "Invalid realisation payload", http.StatusBadRequest)

// RealisationHandler handles HTTP requests for realisations. Reads are
// synchronous; writes go through the dispatch queue.

type RealisationHandler struct {
	usecase   usecase.IRealisationUseCase
	submitter JobSubmitter
}

func NewRealisationHandler(uc usecase.IRealisationUseCase, submitter JobSubmitter) *RealisationHandler {
	return &RealisationHandler{usecase: uc, submitter: submitter}
}

func (h *RealisationHandler) Create(c *gin.Context) {
	var payload request.CreateRealisationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRealisationPayload.HTTPStatus, errInvalidRealisationPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(TaskCreateRealisation, map[string]interface{}{
		"order_id":    payload.ResolveOrderID(),
		"employee_id": payload.ResolveEmployeeID(),
		"created_by":  payload.ResolveCreatedBy(),
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}

func (h *RealisationHandler) GetByID(c *gin.Context) {
	realisation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRealisation(realisation))
}

func (h *RealisationHandler) List(c *gin.Context) {
	realisations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRealisations(realisations))
}

func (h *RealisationHandler) Start(c *gin.Context) {
	h.submitRealisationAction(c, TaskStartRealisation)
}

func (h *RealisationHandler) Complete(c *gin.Context) {
	h.submitRealisationAction(c, TaskCompleteRealisation)
}

func (h *RealisationHandler) submitRealisationAction(c *gin.Context, task string) {
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionPayload.HTTPStatus, errInvalidActionPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(task, map[string]interface{}{
		"realisation_id": c.Param("id"),
		"author_id":      payload.ResolveAuthorID(),
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}
