package handlers

import (
	"errors"
	"net/http"

	request "gestor_manutencao/internal/adapter/http/dto/request"
	response "gestor_manutencao/internal/adapter/http/dto/response"
	"gestor_manutencao/internal/usecase"
	"gestor_manutencao/pkg"

	"github.com/gin-gonic/gin"
)

type ServicePaymentHandler struct {
	usecase usecase.IServicePaymentUseCase
}

func NewServicePaymentHandler(uc usecase.IServicePaymentUseCase) *ServicePaymentHandler {
	return &ServicePaymentHandler{usecase: uc}
}

func (h *ServicePaymentHandler) PayService(c *gin.Context) {
	var payload request.PayServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.PayService(c.Request.Context(), c.Param("id"), payload.Actor.ToActor(), payload.ProviderPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(updated))
}

func (h *ServicePaymentHandler) ListPayments(c *gin.Context) {
	ps, err := h.usecase.ListByRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServicePayments(ps))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_REQUEST", "Invalid payment request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorRoleNotAllowed):
		return pkg.NewDomainErrorSimple("ROLE_NOT_ALLOWED", "Actor role not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestStatusNotAllowed):
		return pkg.NewDomainErrorSimple("REQUEST_STATUS_NOT_ALLOWED", "Request is not payable in its current status", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrRequestStatusChanged):
		return pkg.NewDomainErrorSimple("REQUEST_STATUS_CHANGED", "Request status changed, fetch the latest state and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
