package handlers

import (
	"net/http"

	request "orderdesk/internal/adapter/http/dto/request"
	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for customer registration and lookup.
// Registration is synchronous; it does not go through the dispatch queue.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var payload request.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Register(c.Request.Context(), payload.ResolveFirstName(), payload.ResolveLastName(), payload.ResolveEmail())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}
