package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authorHandler "blog-backend/internal/domains/author/handler"
	postHandler "blog-backend/internal/domains/post/handler"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

type healthChecker interface {
	HealthCheck(ctx context.Context) map[string]error
}

type routes struct {
	authors *authorHandler.AuthorHandler
	posts   *postHandler.PostHandler
	health  healthChecker
	version string
}

func SetupRouter(c *container.Container) *gin.Engine {
	return newRouter(routes{
		authors: c.AuthorHandler,
		posts:   c.PostHandler,
		health:  c,
		version: c.Config.App.Version,
	})
}

func newRouter(rt routes) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(rt.health, rt.version))

		setupAuthorRoutes(v1, rt.authors)
		setupPostRoutes(v1, rt.posts)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, h *authorHandler.AuthorHandler) {
	authors := v1.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.GET("", h.List)
		authors.GET("/:id", h.GetByID)
		authors.PATCH("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, h *postHandler.PostHandler) {
	posts := v1.Group("/posts")
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:id", h.GetByID)
		posts.PATCH("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

func healthCheckHandler(hc healthChecker, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		services := gin.H{}
		for name, err := range hc.HealthCheck(ctx) {
			if err != nil {
				services[name] = "error: " + err.Error()
				status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			services[name] = "ok"
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"services":  services,
		})
	}
}
