package routes

import (
	"cake_calculator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCakeTypes  = "/caketypes"
	PathCakeShapes = "/cakeshapes"
	PathCakeSizes  = "/cakesizes"
	PathFillings   = "/fillings"
	PathFrostings  = "/frostings"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	types := rg.Group(PathCakeTypes)
	{
		types.GET("", catalogHandler.ListTypes)
		types.GET("/:id", catalogHandler.GetType)
		types.POST("", catalogHandler.CreateType)
	}

	shapes := rg.Group(PathCakeShapes)
	{
		shapes.GET("", catalogHandler.ListShapes)
		shapes.GET("/:id", catalogHandler.GetShape)
		shapes.POST("", catalogHandler.CreateShape)
	}

	sizes := rg.Group(PathCakeSizes)
	{
		sizes.GET("", catalogHandler.ListSizes)
		sizes.GET("/:id", catalogHandler.GetSize)
		sizes.POST("", catalogHandler.CreateSize)
	}

	fillings := rg.Group(PathFillings)
	{
		fillings.GET("", catalogHandler.ListFillings)
		fillings.GET("/:id", catalogHandler.GetFilling)
		fillings.POST("", catalogHandler.CreateFilling)
	}

	frostings := rg.Group(PathFrostings)
	{
		frostings.GET("", catalogHandler.ListFrostings)
		frostings.GET("/:id", catalogHandler.GetFrosting)
		frostings.POST("", catalogHandler.CreateFrosting)
	}
}
