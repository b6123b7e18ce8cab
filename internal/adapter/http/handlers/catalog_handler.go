package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cake_calculator/internal/domain/entities"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler serves the order-form catalogs: cake types, shapes, preset
// sizes, fillings and frostings. Each catalog offers list, get-by-id and
// create; catalog records are retired by flipping IsActive, not deleted.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListTypes(c *gin.Context) {
	types, err := h.usecase.ListTypes(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *CatalogHandler) GetType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	t, err := h.usecase.GetTypeByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) CreateType(c *gin.Context) {
	var payload entities.CakeType
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateType(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListShapes(c *gin.Context) {
	shapes, err := h.usecase.ListShapes(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, shapes)
}

func (h *CatalogHandler) GetShape(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.usecase.GetShapeByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) CreateShape(c *gin.Context) {
	var payload entities.CakeShape
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateShape(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSizes accepts an optional shapeId query parameter to narrow the list
// to one shape's presets.
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	var shapeID *int64
	if raw := c.Query("shapeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
			return
		}
		shapeID = &id
	}

	sizes, err := h.usecase.ListSizes(c.Request.Context(), shapeID)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, sizes)
}

func (h *CatalogHandler) GetSize(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.usecase.GetSizeByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) CreateSize(c *gin.Context) {
	var payload entities.CakeSize
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateSize(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListFillings(c *gin.Context) {
	fillings, err := h.usecase.ListFillings(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, fillings)
}

func (h *CatalogHandler) GetFilling(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	f, err := h.usecase.GetFillingByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *CatalogHandler) CreateFilling(c *gin.Context) {
	var payload entities.Filling
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateFilling(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListFrostings(c *gin.Context) {
	frostings, err := h.usecase.ListFrostings(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, frostings)
}

func (h *CatalogHandler) GetFrosting(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	f, err := h.usecase.GetFrostingByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *CatalogHandler) CreateFrosting(c *gin.Context) {
	var payload entities.Frosting
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateFrosting(c.Request.Context(), payload)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCakeTypeNotFound),
		errors.Is(err, usecase.ErrCakeShapeNotFound),
		errors.Is(err, usecase.ErrCakeSizeNotFound),
		errors.Is(err, usecase.ErrFillingNotFound),
		errors.Is(err, usecase.ErrFrostingNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
