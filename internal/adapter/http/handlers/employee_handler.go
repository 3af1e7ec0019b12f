package handlers

import (
	"net/http"

	request "orderdesk/internal/adapter/http/dto/request"
	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEmployeePayload = pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)

// EmployeeHandler handles HTTP requests for employee registration and lookup.

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) Register(c *gin.Context) {
	var payload request.RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	employee, err := h.usecase.Register(c.Request.Context(), payload.ResolveFirstName(), payload.ResolveLastName(), payload.ResolveEmail())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmployee(employee))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployees(employees))
}
