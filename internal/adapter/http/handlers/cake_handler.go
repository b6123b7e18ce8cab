package handlers

import (
	"errors"
	"net/http"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCakePayload = pkg.NewDomainErrorSimple("INVALID_CAKE_INPUT", "Invalid cake payload", http.StatusBadRequest)

type CakeHandler struct {
	usecase usecase.ICakeUseCase
}

func NewCakeHandler(uc usecase.ICakeUseCase) *CakeHandler {
	return &CakeHandler{usecase: uc}
}

func (h *CakeHandler) List(c *gin.Context) {
	cakes, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapCakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cakes)
}

func (h *CakeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cake, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cake)
}

func (h *CakeHandler) Create(c *gin.Context) {
	var payload entities.Cake
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCakePayload.HTTPStatus, errInvalidCakePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CakeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload entities.Cake
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCakePayload.HTTPStatus, errInvalidCakePayload.ToHTTPError())
		return
	}
	payload.ID = id

	if err := h.usecase.Update(c.Request.Context(), payload); err != nil {
		appErr := mapCakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CakeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapCakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCakeNotFound):
		return pkg.NewDomainErrorSimple("CAKE_NOT_FOUND", "Cake not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
