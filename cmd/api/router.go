package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialnetwork-backend/internal/shared/middleware"
	"socialnetwork-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPeopleRoutes(api, c)
	}

	return router
}

// ========================================
// PEOPLE ROUTES
// ========================================
func setupPeopleRoutes(api *gin.RouterGroup, c *container.Container) {
	people := api.Group("/people")
	{
		// Static route registered alongside :id - gin resolves the
		// literal segment first.
		people.GET("/stats", c.PersonHandler.GetStats)

		people.GET("", c.PersonHandler.ListPeople)
		people.GET("/:id", c.PersonHandler.GetPerson)
		people.POST("", c.PersonHandler.CreatePerson)
		people.PUT("/:id", c.PersonHandler.UpdatePerson)
		people.PUT("/:id/status", c.PersonHandler.UpdateStatus)
		people.DELETE("/:id", c.PersonHandler.DeletePerson)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = err.Error()
			}
		}

		health["services"] = gin.H{"database": dbStatus}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
