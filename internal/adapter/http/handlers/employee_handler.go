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

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	created, err := h.usecase.Add(c.Request.Context(), toEmployeeInput(payload))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), toEmployeeInput(payload))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(updated))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func toEmployeeInput(payload request.EmployeeRequest) usecase.EmployeeInput {
	return usecase.EmployeeInput{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Specialization: payload.Specialization,
	}
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrInvalidEmployeeInput),
		errors.Is(err, usecase.ErrInvalidEmployeeEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMPLOYEE", "Invalid employee", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeEmailTaken):
		return pkg.NewDomainErrorSimple("EMPLOYEE_EMAIL_TAKEN", "Employee email already in use", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
