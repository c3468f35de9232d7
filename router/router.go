package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/controllers"
	"github.com/canteen-app/canteen-backend/middlewares"
)

// SetupRouter wires the full HTTP surface. Everything under /api requires a
// bearer token except login, the public menu listing, and the public test
// endpoint; admin routes are additionally gated on the ADMIN role.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	orderCtrl := controllers.NewOrderController(db)
	menuCtrl := controllers.NewMenuController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// -- PUBLIC --
	api.POST("/auth/login", middlewares.NewStrictRateLimiter(), authCtrl.Login)
	api.GET("/menu", menuCtrl.GetAllMeals)
	api.GET("/test/public", func(c *gin.Context) {
		c.String(200, "This is a public endpoint")
	})

	// -- AUTHENTICATED --
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware(db))
	{
		auth.GET("/auth/me", authCtrl.GetMe)
		auth.PUT("/auth/me", authCtrl.UpdateMe)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetOrderHistory)
		auth.DELETE("/orders", orderCtrl.ClearOrderHistory)
		auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		auth.POST("/feedback", feedbackCtrl.SubmitFeedback)

		auth.GET("/test/protected", func(c *gin.Context) {
			c.String(200, "This is a protected endpoint")
		})
	}

	// -- ADMIN --
	admin := auth.Group("")
	admin.Use(middlewares.AdminOnly())
	{
		admin.GET("/orders/admin/all", orderCtrl.GetAllOrders)
		admin.PUT("/orders/admin/:order_id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/menu", menuCtrl.CreateMeal)
		admin.PUT("/menu/:meal_id", menuCtrl.UpdateMeal)
		admin.DELETE("/menu/:meal_id", menuCtrl.DeleteMeal)

		admin.GET("/feedback", feedbackCtrl.GetAllFeedback)

		admin.GET("/admin/dashboard/stats", adminCtrl.GetDashboardStats)
		admin.GET("/admin/dashboard/reports", adminCtrl.GetDetailedReports)

		admin.GET("/test/admin", func(c *gin.Context) {
			c.String(200, "This is an admin endpoint")
		})
	}

	return r
}
