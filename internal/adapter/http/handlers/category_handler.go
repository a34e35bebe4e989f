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

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	created, err := h.usecase.Add(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCategory(created))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	updated, err := h.usecase.Rename(c.Request.Context(), c.Param("id"), payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(updated))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidCategoryName):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNameTaken):
		return pkg.NewDomainErrorSimple("CATEGORY_NAME_TAKEN", "Category name already in use", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
