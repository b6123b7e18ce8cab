package handlers

import (
	"errors"
	"net/http"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIngredientPayload = pkg.NewDomainErrorSimple("INVALID_INGREDIENT_INPUT", "Invalid ingredient payload", http.StatusBadRequest)

type IngredientHandler struct {
	usecase usecase.IIngredientUseCase
}

func NewIngredientHandler(uc usecase.IIngredientUseCase) *IngredientHandler {
	return &IngredientHandler{usecase: uc}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ingredient, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var payload entities.Ingredient
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload entities.Ingredient
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}
	payload.ID = id

	if err := h.usecase.Update(c.Request.Context(), payload); err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapIngredientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIngredient):
		return pkg.NewDomainErrorSimple("INVALID_INGREDIENT_INPUT", "Invalid ingredient payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIngredientNotFound):
		return pkg.NewDomainErrorSimple("INGREDIENT_NOT_FOUND", "Ingredient not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
