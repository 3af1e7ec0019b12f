package routes

import (
	"orderdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathEmployees    = "/employees"
	PathOrders       = "/orders"
	PathQuotations   = "/quotations"
	PathRealisations = "/realisations"
	PathJobs         = "/jobs"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	employeeHandler *handlers.EmployeeHandler,
	orderHandler *handlers.OrderHandler,
	quotationHandler *handlers.QuotationHandler,
	realisationHandler *handlers.RealisationHandler,
	jobHandler *handlers.JobHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Register)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.POST("", employeeHandler.Register)
		employees.GET("", employeeHandler.List)
		employees.GET("/:id", employeeHandler.GetByID)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.PATCH("/:id/validate", orderHandler.Validate)
		orders.PATCH("/:id/reject", orderHandler.Reject)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.Create)
		quotations.GET("", quotationHandler.List)
		quotations.GET("/:id", quotationHandler.GetByID)
		quotations.PATCH("/:id/validate", quotationHandler.Validate)
		quotations.PATCH("/:id/cancel", quotationHandler.Cancel)
		quotations.PATCH("/:id/accept", quotationHandler.Accept)
		quotations.PATCH("/:id/reject", quotationHandler.Reject)
	}

	realisations := rg.Group(PathRealisations)
	{
		realisations.POST("", realisationHandler.Create)
		realisations.GET("", realisationHandler.List)
		realisations.GET("/:id", realisationHandler.GetByID)
		realisations.PATCH("/:id/start", realisationHandler.Start)
		realisations.PATCH("/:id/complete", realisationHandler.Complete)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/:id", jobHandler.GetByID)
	}
}
