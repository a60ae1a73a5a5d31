package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnthonyBalvin/chicharron-web/internal/config"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/handler"
	"github.com/AnthonyBalvin/chicharron-web/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order  *handler.OrderHandler
	Debtor *handler.DebtorHandler
	Report *handler.ReportHandler
	Board  *handler.BoardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerOrderRoutes(v1, h)
		registerDebtorRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerBoardRoutes(v1, h)
	}

	return router
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Save)
		orders.POST("/:id/pay", h.Order.MarkPaid)
		orders.POST("/:id/deliver", h.Order.MarkDelivered)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerDebtorRoutes(v1 *gin.RouterGroup, h *Handlers) {
	debtors := v1.Group("/debtors")
	{
		debtors.GET("", h.Debtor.List)
		debtors.POST("/:name/settle", h.Debtor.Settle)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/summary", h.Report.Get)
		reports.GET("/summary/export", h.Report.Export)
	}
}

func registerBoardRoutes(v1 *gin.RouterGroup, h *Handlers) {
	board := v1.Group("/board")
	{
		board.GET("", h.Board.State)
		board.POST("/refresh", h.Board.Refresh)
		board.PUT("/view", h.Board.SetView)
		board.POST("/actions", h.Board.RequestAction)
		board.POST("/confirm", h.Board.Confirm)
		board.POST("/cancel", h.Board.Cancel)
	}
}
