package handlers

import (
	"errors"
	"net/http"

	request "cake_calculator/internal/adapter/http/dto/request"
	response "cake_calculator/internal/adapter/http/dto/response"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreviewPayload = pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid preview payload", http.StatusBadRequest)

// PricingHandler serves the two pricing computations: the itemized actual
// cost of a persisted cake and the pre-order preview estimate.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetCakePricing godoc
// @Summary      Itemized cost for a persisted cake
// @Description  Computes labor + other costs + ingredient costs and projects suggested prices per margin.
// @Param        id       path   int     true   "Cake ID"
// @Param        margins  query  string  false  "Comma-separated margin fractions (default 0.1,0.2,0.3)"
// @Success      200  {object}  response.CakePricingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pricing/{id} [get]
func (h *PricingHandler) GetCakePricing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res, err := h.usecase.GetCakePricing(c.Request.Context(), id, c.Query("margins"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCakePricing(res))
}

// PreviewPricing godoc
// @Summary      Pre-order cost estimate
// @Description  Estimates ingredients/labor/overhead from fixed unit rates and the configured geometry.
// @Param        request  body  request.PricingPreviewRequest  true  "Order configuration"
// @Success      200  {object}  response.PricingPreviewResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pricing/preview [post]
func (h *PricingHandler) PreviewPricing(c *gin.Context) {
	var payload request.PricingPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreviewPayload.HTTPStatus, errInvalidPreviewPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.PreviewCost(c.Request.Context(), payload.ToPreviewInput())
	if err != nil {
		// Whatever went wrong stays server-side; the client gets a
		// generic failure.
		appErr := pkg.NewDomainError("PRICING_PREVIEW_FAILED", "Failed to calculate pricing", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostPreview(res))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCakeNotFound):
		return pkg.NewDomainErrorSimple("CAKE_NOT_FOUND", "Cake not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
