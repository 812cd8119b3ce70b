package routes

import (
	"net/http"

	"adira_backend/internal/handlers"
	"adira_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути с завершающим слешем, Django-совместимые.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
	staffMW gin.HandlerFunc,
) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register/", appHandlers.AuthHandler.Register)
		auth.POST("/login/", appHandlers.AuthHandler.Login)
		auth.POST("/token/refresh/", appHandlers.AuthHandler.RefreshToken)
		auth.GET("/verify-email/", appHandlers.AuthHandler.VerifyEmail)

		// Logout аутентифицируется самим refresh-токеном в теле:
		// истекший access не должен мешать отзыву сессии
		auth.POST("/logout/", appHandlers.AuthHandler.Logout)

		auth.GET("/profile/", authMW, appHandlers.ProfileHandler.GetProfile)
		auth.PATCH("/profile/", authMW, appHandlers.ProfileHandler.UpdateProfile)
	}

	products := api.Group("/products")
	products.Use(authMW)
	{
		products.GET("/", appHandlers.ProductHandler.List)
		products.GET("/:id/", appHandlers.ProductHandler.Get)

		// Мутации каталога только для staff
		products.POST("/", staffMW, appHandlers.ProductHandler.Create)
		products.PATCH("/:id/", staffMW, appHandlers.ProductHandler.Update)
		products.DELETE("/:id/", staffMW, appHandlers.ProductHandler.Delete)
	}

	logger.Info("HTTP routes registered")
}
