// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockee/backend/internal/integration/entrypoint/controller"
	"github.com/stockee/backend/internal/integration/entrypoint/middleware"
	"github.com/stockee/backend/internal/integration/ratelimit"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health   *controller.HealthController
	Auth     *controller.AuthController
	User     *controller.UserController
	Group    *controller.GroupController
	Invite   *controller.InviteController
	Category *controller.CategoryController
	Item     *controller.ItemController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine         *gin.Engine
	controllers    Controllers
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   ratelimit.Limiter
	joinLimiter    ratelimit.Limiter
	allowedOrigins []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter ratelimit.Limiter,
	joinLimiter ratelimit.Limiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		controllers:    controllers,
		authMiddleware: authMiddleware,
		loginLimiter:   loginLimiter,
		joinLimiter:    joinLimiter,
		allowedOrigins: allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		cors.New(r.corsConfig()),
	)

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(r.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = r.allowedOrigins
	}
	return cfg
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	authenticated := r.authMiddleware.Authenticate()

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.Auth.Register)
			auth.POST("/login", middleware.RateLimit(r.loginLimiter, middleware.ClientIPKey), c.Auth.Login)
			auth.POST("/refresh", c.Auth.RefreshToken)
			auth.POST("/logout", c.Auth.Logout)
		}

		users := v1.Group("/users")
		users.Use(authenticated)
		{
			users.GET("/me", c.User.Me)
			users.PATCH("/me", c.User.UpdateProfile)
			users.PUT("/me/password", c.User.ChangePassword)
		}

		groups := v1.Group("/groups")
		groups.Use(authenticated)
		{
			groups.GET("", c.Group.List)
			groups.POST("", c.Group.Create)
			groups.GET("/:id", c.Group.Get)
			groups.DELETE("/:id", c.Group.Delete)
			groups.POST("/:id/leave", c.Group.Leave)
			groups.DELETE("/:id/members/:member_id", c.Group.RemoveMember)
			groups.POST("/:id/invite-code", c.Group.RegenerateInviteCode)
			groups.POST("/:id/invite-email", c.Group.SendInvitation)
		}

		// Preview and join share one attempt budget per caller.
		invites := v1.Group("/invites")
		invites.Use(authenticated, middleware.RateLimit(r.joinLimiter, middleware.UserOrIPKey))
		{
			invites.GET("/:code", c.Invite.Preview)
			invites.POST("/:code/join", c.Invite.Join)
		}

		categories := v1.Group("/categories")
		categories.Use(authenticated)
		{
			categories.GET("", c.Category.List)
			categories.POST("", c.Category.Create)
			categories.PUT("/reorder", c.Category.Reorder)
			categories.PATCH("/:id", c.Category.Update)
			categories.DELETE("/:id", c.Category.Delete)
		}

		items := v1.Group("/items")
		items.Use(authenticated)
		{
			items.GET("", c.Item.List)
			items.POST("", c.Item.Create)
			items.PUT("/reorder", c.Item.Reorder)
			items.GET("/:id", c.Item.Get)
			items.PATCH("/:id", c.Item.Update)
			items.DELETE("/:id", c.Item.Delete)
			items.POST("/:id/increment", c.Item.Increment)
			items.POST("/:id/decrement", c.Item.Decrement)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
