package routes

import (
	"verduleria/controllers"
	"verduleria/middleware"
	"verduleria/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartStore := repositories.NewCartStore()

	authCtrl := &controllers.AuthController{}
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController(cartStore)
	orderCtrl := controllers.NewOrderController(cartStore)
	reviewCtrl := controllers.NewReviewController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/reviews", reviewCtrl.GetReviews)
	router.POST("/reviews", reviewCtrl.CreateReview)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
		session.POST("/orders", orderCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)
		admin.DELETE("/orders", orderCtrl.DeleteAllOrders)

		admin.DELETE("/reviews/:id", reviewCtrl.DeleteReview)
	}

	router.Static("/uploads", "./uploads")
}
