package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/config"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	jwtManager     *jwt.Manager
	authHandler    *Auth
	meetingHandler *Meeting
	actionHandler  *Action
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, authHandler *Auth, meetingHandler *Meeting, actionHandler *Action) *Router {
	return &Router{
		cfg:            cfg,
		jwtManager:     jwtManager,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		actionHandler:  actionHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)

	protected := v1.Group("", middleware.EchoAuth(rt.jwtManager))
	rt.setupMeetingRoutes(protected)
	rt.setupActionRoutes(protected)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/signup", rt.authHandler.Signup)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.POST("/:id/process", rt.meetingHandler.Process)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
}

// setupActionRoutes configures action item routes
func (rt *Router) setupActionRoutes(g *echo.Group) {
	actionGroup := g.Group("/actions")

	actionGroup.GET("", rt.actionHandler.List)
	actionGroup.PATCH("/:id", rt.actionHandler.Update)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
