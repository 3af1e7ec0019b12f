package handlers

import (
	"net/http"

	request "orderdesk/internal/adapter/http/dto/request"
	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for quotations. Reads are
// synchronous; writes go through the dispatch queue.

type QuotationHandler struct {
	usecase   usecase.IQuotationUseCase
	submitter JobSubmitter
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, submitter JobSubmitter) *QuotationHandler {
	return &QuotationHandler{usecase: uc, submitter: submitter}
}

func (h *QuotationHandler) Create(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(TaskCreateQuotation, map[string]interface{}{
		"order_id": payload.ResolveOrderID(),
		"price":    payload.Price,
		"details":  payload.Details,
		"owner_id": payload.ResolveOwnerID(),
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}

func (h *QuotationHandler) GetByID(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) Validate(c *gin.Context) {
	h.submitQuotationAction(c, TaskValidateQuotation)
}

func (h *QuotationHandler) Cancel(c *gin.Context) {
	h.submitQuotationAction(c, TaskCancelQuotation)
}

func (h *QuotationHandler) Accept(c *gin.Context) {
	h.submitQuotationAction(c, TaskAcceptQuotation)
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	h.submitQuotationAction(c, TaskRejectQuotation)
}

func (h *QuotationHandler) submitQuotationAction(c *gin.Context, task string) {
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionPayload.HTTPStatus, errInvalidActionPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(task, map[string]interface{}{
		"quotation_id": c.Param("id"),
		"author_id":    payload.ResolveAuthorID(),
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}
