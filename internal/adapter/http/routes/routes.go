package routes

import (
	"log"
	"strconv"

	_ "cake_calculator/docs" // swag-generated documentation
	"cake_calculator/internal/adapter/http/handlers"
	"cake_calculator/internal/adapter/persistence/repository"
	"cake_calculator/internal/config"
	"cake_calculator/internal/infrastructure/database"
	"cake_calculator/internal/usecase"
	"cake_calculator/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires configuration, storage, usecases and handlers, then starts
// the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	setMiddlewares(zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, zl)

	zl.Info("starting server", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		zl.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, zl *zap.Logger) {
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}

	ingredientRepo := repository.NewIngredientSQLiteRepository(db)
	templateRepo := repository.NewTemplateSQLiteRepository(db)
	cakeRepo := repository.NewCakeSQLiteRepository(db)
	catalogRepo := repository.NewCatalogSQLiteRepository(db)
	roleRepo := repository.NewRoleSQLiteRepository(db)

	pricingHandler := handlers.NewPricingHandler(
		usecase.NewPricingUseCase(cakeRepo, ingredientRepo, catalogRepo, zl))
	ingredientHandler := handlers.NewIngredientHandler(usecase.NewIngredientUseCase(ingredientRepo))
	templateHandler := handlers.NewTemplateHandler(usecase.NewTemplateUseCase(templateRepo))
	cakeHandler := handlers.NewCakeHandler(usecase.NewCakeUseCase(cakeRepo))
	catalogHandler := handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogRepo))
	roleHandler := handlers.NewRoleHandler(usecase.NewRoleUseCase(roleRepo))

	api := router.Group("/api")
	addPingRoutes(api)
	addPricingRoutes(api, pricingHandler)
	addCakeRoutes(api, cakeHandler, templateHandler, ingredientHandler, roleHandler)
	addCatalogRoutes(api, catalogHandler)
}

func setMiddlewares(zl *zap.Logger) {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.AbortWithStatus(500)
	}))
}

const requestIDKey = "request_id"

// requestID tags every request with an ID, honoring one supplied by the
// caller in X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
