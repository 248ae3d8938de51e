package routes

import (
	"productservice/controllers"
	"productservice/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, products *controllers.ProductController, angular *controllers.AngularProductController) {

	r.Use(cors.Default())

	v1 := r.Group("/api/v1/products")
	v1.Use(middleware.AuthMiddleware())
	{
		v1.POST("", products.CreateProduct)
		v1.GET("", products.GetProducts)
		v1.GET("/:id", products.GetProduct)
		v1.PUT("/:id", products.UpdateProduct)
		v1.DELETE("/:id", products.DeleteProduct)
	}

	ap := r.Group("/api/angularProduct")
	{
		ap.GET("/health", angular.Health)
		ap.GET("/get", angular.GetProducts)
		ap.GET("/get/:id", angular.GetProduct)

		protected := ap.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/add", angular.AddProduct)
			protected.PATCH("/update", angular.UpdateProduct)
			protected.DELETE("/delete", angular.DeleteProduct)
		}
	}
}
