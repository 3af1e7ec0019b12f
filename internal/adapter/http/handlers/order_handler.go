package handlers

import (
	"net/http"

	request "orderdesk/internal/adapter/http/dto/request"
	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload  = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidActionPayload = pkg.NewDomainErrorSimple("INVALID_ACTION_INPUT", "Invalid action payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for orders. Reads are served from the
// use case directly; writes are queued on the dispatcher and answered with
// 202 plus a job id to poll.

type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	submitter JobSubmitter
}

func NewOrderHandler(uc usecase.IOrderUseCase, submitter JobSubmitter) *OrderHandler {
	return &OrderHandler{usecase: uc, submitter: submitter}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(TaskCreateOrder, map[string]interface{}{
		"customer_id": payload.ResolveCustomerID(),
		"service":     payload.ResolveService(),
		"description": payload.Description,
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.submitOrderAction(c, TaskCancelOrder)
}

func (h *OrderHandler) Validate(c *gin.Context) {
	h.submitOrderAction(c, TaskValidateOrder)
}

func (h *OrderHandler) Reject(c *gin.Context) {
	h.submitOrderAction(c, TaskRejectOrder)
}

func (h *OrderHandler) submitOrderAction(c *gin.Context, task string) {
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionPayload.HTTPStatus, errInvalidActionPayload.ToHTTPError())
		return
	}

	jobID, err := h.submitter.Submit(task, map[string]interface{}{
		"order_id":  c.Param("id"),
		"author_id": payload.ResolveAuthorID(),
		"comment":   payload.Comment,
	})
	if err != nil {
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedJob(jobID))
}
