package main

import (
	"productservice/config"
	"productservice/controllers"
	"productservice/database"
	"productservice/models"
	"productservice/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	defer zap.L().Sync()

	zap.S().Info("Product service initializing")

	dsn := config.GetEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=product port=5432 sslmode=disable")
	db, err := database.Connect(dsn)
	if err != nil {
		zap.S().Fatalw("database connection failed", "error", err)
	}

	repo := models.NewProductsRepository(db)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r,
		controllers.NewProductController(repo),
		controllers.NewAngularProductController(repo),
	)

	port := config.GetEnv("PORT", "8080")
	zap.S().Infof("Product service listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
