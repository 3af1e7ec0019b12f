package handlers

import (
	"errors"
	"net/http"

	"orderdesk/internal/infrastructure/dispatch"
	"orderdesk/internal/usecase"
	"orderdesk/pkg"
)

// mapDomainError translates use case errors into the HTTP error shape.
// The sentinel kind decides the status; the wrapped text carries the detail.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainErrorSimple("PERSISTENCE_FAILURE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidCustomerPayload),
		errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrInvalidEmployeePayload),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderService),
		errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidQuotationPrice),
		errors.Is(err, usecase.ErrInvalidRealisationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapSubmitError translates dispatcher submission failures.
func mapSubmitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, dispatch.ErrQueueFull), errors.Is(err, dispatch.ErrStopped):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", err.Error(), http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
