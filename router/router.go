// Package router wires the middleware chain and resource routes onto the
// Gin engine.
package router

import (
	"time"

	"github.com/axionlabs/axion-backend/config"
	"github.com/axionlabs/axion-backend/handlers"
	"github.com/axionlabs/axion-backend/middleware"
	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Dependencies holds everything required to set up routes.
type Dependencies struct {
	Config          *config.Config
	JWTValidator    middleware.Validator
	RedisClient     *redis.Client
	ServiceHandler  *handlers.ResourceHandler[*types.Service]
	ProjectHandler  *handlers.ResourceHandler[*types.Project]
	ArticleHandler  *handlers.ResourceHandler[*types.Article]
	EventHandler    *handlers.ResourceHandler[*types.Event]
	GalleryHandler  *handlers.ResourceHandler[*types.GalleryItem]
	FeedbackHandler *handlers.FeedbackHandler
	ContactHandler  *handlers.ContactHandler
	HealthHandler   *handlers.HealthHandler
}

// resourceRoutes is the uniform CRUD surface shared by every collection.
type resourceRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.GET("/health", deps.HealthHandler.Status)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Authentication is optional everywhere; each handler's policy decides
	// which actions unauthenticated callers may perform.
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(deps.JWTValidator))

	mountResource(api, "/services", deps.ServiceHandler)
	mountResource(api, "/projects", deps.ProjectHandler)
	mountResource(api, "/articles", deps.ArticleHandler)
	mountResource(api, "/events", deps.EventHandler)
	mountResource(api, "/gallery", deps.GalleryHandler)

	submitLimiter := middleware.SubmissionRateLimiter(
		deps.RedisClient,
		deps.Config.RateLimit.SubmitRequestsPerWindow,
		time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
	)

	feedback := api.Group("/feedback")
	{
		feedback.GET("", deps.FeedbackHandler.List)
		feedback.POST("", submitLimiter, deps.FeedbackHandler.Create)
		feedback.GET("/:id", deps.FeedbackHandler.Get)
		feedback.PUT("/:id", deps.FeedbackHandler.Update)
		feedback.PATCH("/:id", deps.FeedbackHandler.Update)
		feedback.DELETE("/:id", deps.FeedbackHandler.Delete)
		feedback.POST("/:id/approve", middleware.RequireAuth(deps.JWTValidator), deps.FeedbackHandler.Approve)
		feedback.POST("/:id/reject", middleware.RequireAuth(deps.JWTValidator), deps.FeedbackHandler.Reject)
	}

	contacts := api.Group("/contacts")
	{
		contacts.GET("", deps.ContactHandler.List)
		contacts.POST("", submitLimiter, deps.ContactHandler.Create)
		contacts.GET("/:id", deps.ContactHandler.Get)
		contacts.PUT("/:id", deps.ContactHandler.Update)
		contacts.PATCH("/:id", deps.ContactHandler.Update)
		contacts.DELETE("/:id", deps.ContactHandler.Delete)
	}

	return r
}

func mountResource(group *gin.RouterGroup, path string, h resourceRoutes) {
	rg := group.Group(path)
	{
		rg.GET("", h.List)
		rg.POST("", h.Create)
		rg.GET("/:id", h.Get)
		rg.PUT("/:id", h.Update)
		rg.PATCH("/:id", h.Update)
		rg.DELETE("/:id", h.Delete)
	}
}
