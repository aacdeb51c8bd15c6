package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jugnuu/themis-pos/alerts"
	"github.com/jugnuu/themis-pos/controllers"
	"github.com/jugnuu/themis-pos/middlewares"
	"github.com/jugnuu/themis-pos/services"
	"github.com/jugnuu/themis-pos/store"
	"github.com/jugnuu/themis-pos/utils"
)

func SetupRouter(db *gorm.DB, hub *alerts.Hub, sessions *utils.SessionManager, adminPasswordHash []byte) *gin.Engine {
	r := gin.Default()

	// 50 requests per second per IP across the whole surface
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	orderStore := store.NewOrderStore(db)
	orderSvc := services.NewOrderService(orderStore, hub)

	orderCtrl := controllers.NewOrderController(orderSvc)
	viewCtrl := controllers.NewViewController(orderSvc)
	sessionCtrl := controllers.NewSessionController(sessions, adminPasswordHash)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Table-scoped menu for diners
	r.GET("/", controllers.GetMenu)

	// Login target for the redirect from gated views
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "POST the admin password to /login"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", sessionCtrl.Login)
	}

	// Order flow (diner + staff actions, no login per storefront flow)
	r.POST("/order", orderCtrl.PlaceOrder)
	r.POST("/call-waiter", orderCtrl.CallWaiter)
	r.POST("/complete-order/:order_id", orderCtrl.MarkServed)
	r.POST("/checkout/:order_id", orderCtrl.Checkout)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AdminSession(sessions))
	{
		admin.GET("/dashboard", viewCtrl.Dashboard)
		admin.GET("/billing", viewCtrl.Billing)
		admin.GET("/sales", viewCtrl.Sales)

		// Live alert feed for staff displays
		admin.GET("/ws/staff", controllers.StaffSocketHandler(hub))
	}

	return r
}
