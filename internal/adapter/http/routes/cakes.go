package routes

import (
	"cake_calculator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCakes       = "/cakes"
	PathTemplates   = "/templates"
	PathIngredients = "/ingredients"
	PathRoles       = "/roles"
)

func addCakeRoutes(
	rg *gin.RouterGroup,
	cakeHandler *handlers.CakeHandler,
	templateHandler *handlers.TemplateHandler,
	ingredientHandler *handlers.IngredientHandler,
	roleHandler *handlers.RoleHandler,
) {
	cakes := rg.Group(PathCakes)
	{
		cakes.GET("", cakeHandler.List)
		cakes.GET("/:id", cakeHandler.Get)
		cakes.POST("", cakeHandler.Create)
		cakes.PUT("/:id", cakeHandler.Update)
		cakes.DELETE("/:id", cakeHandler.Delete)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.GET("", templateHandler.List)
		templates.GET("/:id", templateHandler.Get)
		templates.POST("", templateHandler.Create)
		templates.PUT("/:id", templateHandler.Update)
		templates.DELETE("/:id", templateHandler.Delete)
	}

	ingredients := rg.Group(PathIngredients)
	{
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.Get)
		ingredients.POST("", ingredientHandler.Create)
		ingredients.PUT("/:id", ingredientHandler.Update)
		ingredients.DELETE("/:id", ingredientHandler.Delete)
	}

	roles := rg.Group(PathRoles)
	{
		roles.GET("", roleHandler.List)
		roles.GET("/:id", roleHandler.Get)
		roles.POST("", roleHandler.Create)
		roles.PUT("/:id", roleHandler.Update)
		roles.DELETE("/:id", roleHandler.Delete)
	}
}
