package routes

import (
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/handler"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	callbackHandler *handler.CallbackHandler,
	userHandler *handler.UserHandler,
) {
	// Health check
	router.GET("/", userHandler.Health)

	// Push-to-pay initiation
	router.POST("/pay", paymentHandler.Pay)
	router.POST("/deposit", paymentHandler.Deposit)

	// Gateway webhooks
	router.POST("/callback", callbackHandler.HandleCallback)
	router.POST("/deposit-callback", callbackHandler.HandleCallback)

	// Queries
	router.GET("/user/:userId", userHandler.GetStatement)
	router.GET("/payments/:reference", userHandler.GetAttempt)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigin string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigin))
}
