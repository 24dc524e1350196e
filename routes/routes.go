package routes

import (
	"tillpoint/configs"
	"tillpoint/controllers"
	"tillpoint/middlewares"
	"tillpoint/repository"
	"tillpoint/services"
	"tillpoint/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	// Services
	authSvc := services.NewAuthService(operatorRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(db, menuRepo, counterRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	reportSvc := services.NewReportService(orderRepo)
	billingSvc := services.NewBillingService()

	// Order feed for ancillary displays
	feed := ws.NewFeedHub()
	go feed.Run()
	orderSvc.Notifier = feed

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, billingSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc, billingSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Everything else requires the operator token
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/menu", menuCtrl.List)
		auth.POST("/menu", menuCtrl.Create)
		auth.GET("/menu/:id", menuCtrl.Get)
		auth.PATCH("/menu/:id", menuCtrl.Update)
		auth.DELETE("/menu/:id", menuCtrl.Delete)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/items", cartCtrl.Add)
		auth.PATCH("/cart/items/qty", cartCtrl.AdjustQty)
		auth.DELETE("/cart/items/:menuItemId", cartCtrl.Remove)
		auth.DELETE("/cart", cartCtrl.Clear)
		auth.GET("/cart/bill", cartCtrl.Bill)

		auth.POST("/orders/checkout", orderCtrl.Checkout)
		auth.GET("/orders/:id", orderCtrl.Detail)
		auth.GET("/orders", orderCtrl.ListMonth)

		auth.GET("/reports/monthly", reportCtrl.Monthly)
		auth.GET("/reports/monthly/export", reportCtrl.Export)

		auth.GET("/ws/feed", feed.HandleWebSocket)
	}
}
