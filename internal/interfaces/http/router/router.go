package router

import (
	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/infrastructure/config"
	"github.com/smartsolar/backend/internal/infrastructure/logger"
	"github.com/smartsolar/backend/internal/interfaces/http/handler"
	"github.com/smartsolar/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Dependencies bundles everything the router wires together
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Gate      *dashboard.SessionGate
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	System    *handler.SystemHandler
}

// New builds the gin engine with all middleware and routes registered
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(logger.RequestID())
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithOrigins(deps.Config.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(deps.Config.HTTP.MaxBodySize))

	engine.GET("/health", deps.System.Health)
	engine.GET("/ready", deps.System.Ready)

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", deps.Auth.Login)

		authed := auth.Group("")
		authed.Use(middleware.AdminSession(deps.Gate))
		{
			authed.POST("/logout", deps.Auth.Logout)
			authed.GET("/me", deps.Auth.Me)
		}
	}

	dash := api.Group("/dashboard")
	dash.Use(middleware.AdminSession(deps.Gate))
	{
		dash.GET("/orders", deps.Dashboard.ListOrders)
		dash.DELETE("/orders/:id", deps.Dashboard.DeleteOrder)

		dash.GET("/bookings", deps.Dashboard.ListBookings)
		dash.DELETE("/bookings/:id", deps.Dashboard.DeleteBooking)

		dash.GET("/products", deps.Dashboard.ListProducts)
		dash.POST("/products", deps.Dashboard.CreateProduct)
		dash.POST("/products/image", deps.Dashboard.UploadProductImage)
		dash.DELETE("/products/:id", deps.Dashboard.DeleteProduct)

		dash.GET("/users", deps.Dashboard.ListUsers)
		dash.DELETE("/users/:id", deps.Dashboard.DeleteUser)
	}

	return engine
}
