package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoints
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)
		api.POST("/search", handler.Search)
		api.GET("/history", handler.GetHistory)
		api.GET("/recommendations", handler.GetRecommendations)
		api.GET("/suggestions", handler.GetSuggestions)
	}

	searches := router.Group("/search")
	{
		searches.POST("/ipid", handler.SearchByIdentifier)
		searches.POST("/batch-ipid", handler.SearchBatch)
		searches.POST("/smart", handler.SmartSearch)
		searches.POST("/compare", handler.CompareAssets)
	}

	meta := router.Group("/metadata")
	{
		meta.GET("/:ipId", handler.GetMetadata)
		meta.GET("/:ipId/analysis", handler.AnalyzeAsset)
	}
}
