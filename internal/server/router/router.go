package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/server/handlers"
	"poultryfarm/backend/pkg/clients/identity"
)

// Handlers bundles the HTTP adapters wired into the engine.
type Handlers struct {
	Users     *handlers.UserHandler
	Batches   *handlers.BatchHandler
	Ledger    *handlers.LedgerHandler
	Chat      *handlers.ChatHandler
	Personnel *handlers.PersonnelHandler
	Forecast  *handlers.ForecastHandler
	Weather   *handlers.WeatherHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, identityClient identity.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/weather", h.Weather.Current)

	authed := r.Group("/", handlers.AuthMiddleware(identityClient, logger))

	authed.POST("/admin/users", h.Users.Create)
	authed.GET("/users", h.Users.List)
	authed.DELETE("/admin/users/:uid", h.Users.Delete)

	authed.POST("/batches", h.Batches.Create)
	authed.GET("/batches", h.Batches.List)
	authed.PATCH("/batches/:id/status", h.Batches.UpdateStatus)
	authed.DELETE("/batches/:id", h.Batches.Delete)

	authed.POST("/batches/:id/expenses", h.Ledger.AddExpense)
	authed.GET("/batches/:id/expenses", h.Ledger.ListExpenses)
	authed.PUT("/batches/:id/expenses/:expenseID", h.Ledger.UpdateExpense)
	authed.PATCH("/batches/:id/expenses/:expenseID/category", h.Ledger.RecategorizeExpense)
	authed.DELETE("/batches/:id/expenses/:expenseID", h.Ledger.DeleteExpense)

	authed.POST("/batches/:id/sales", h.Ledger.AddSale)
	authed.GET("/batches/:id/sales", h.Ledger.ListSales)
	authed.PUT("/batches/:id/sales/:saleID", h.Ledger.UpdateSale)
	authed.DELETE("/batches/:id/sales/:saleID", h.Ledger.DeleteSale)

	authed.POST("/chats/:uid/messages", h.Chat.Send)
	authed.GET("/chats/:uid/messages", h.Chat.List)
	authed.PUT("/chats/:uid/messages/:messageID", h.Chat.Edit)
	authed.DELETE("/chats/:uid/messages/:messageID", h.Chat.Delete)

	authed.POST("/personnel", h.Personnel.Create)
	authed.GET("/personnel", h.Personnel.List)
	authed.PUT("/personnel/:id", h.Personnel.Update)
	authed.DELETE("/personnel/:id", h.Personnel.Delete)

	authed.GET("/batches/:id/feed-forecast", h.Forecast.FeedForecast)
	authed.GET("/batches/:id/inventory-forecast", h.Forecast.InventoryForecast)
	authed.GET("/batches/:id/vitamin-trends", h.Forecast.VitaminTrends)
	authed.GET("/forecasts/monthly-vitamins", h.Forecast.MonthlyVitamins)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
