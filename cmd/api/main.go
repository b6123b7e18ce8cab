package main

import (
	_ "cake_calculator/docs"
	"cake_calculator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

// @title           Cake Calculator API
// @version         1.0
// @description     Cake cost estimation service (pricing + catalogs) backed by SQLite.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	// Monetary fields go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	routes.Run()
}
