package routes

import (
	"cake_calculator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPricing = "/pricing"

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/preview", pricingHandler.PreviewPricing)
		pricing.GET("/:id", pricingHandler.GetCakePricing)
	}
}
