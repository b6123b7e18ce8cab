package handlers

import (
	"errors"
	"net/http"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRolePayload = pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)

type RoleHandler struct {
	usecase usecase.IRoleUseCase
}

func NewRoleHandler(uc usecase.IRoleUseCase) *RoleHandler {
	return &RoleHandler{usecase: uc}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	role, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var payload entities.Role
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload entities.Role
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}
	payload.ID = id

	if err := h.usecase.Update(c.Request.Context(), payload); err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRoleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return pkg.NewDomainErrorSimple("ROLE_NOT_FOUND", "Role not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
