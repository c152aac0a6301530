package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/database"
	"github.com/trailstats/trailstats/internal/handler"
	"github.com/trailstats/trailstats/internal/middleware"
	"github.com/trailstats/trailstats/internal/repository"
	"github.com/trailstats/trailstats/internal/service"
	"github.com/trailstats/trailstats/pkg/response"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "trailstats API is running",
		})
	})

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	summaryRepo := repository.NewSummaryRepository(database.GetDB())
	statsService := service.NewStatsService(summaryRepo)
	statsHandler := handler.NewStatsHandler(statsService, cfg)

	api := r.Group("/api/v1")
	{
		tracks := api.Group("/tracks")
		{
			tracks.POST("/stats", statsHandler.AnalyzeTrack)
			tracks.GET("/summaries", statsHandler.ListSummaries)
		}
	}

	return r
}
