package api

import (
	"strings"
	"time"

	"github.com/andresuchdata/smart-reorder/internal/api/handlers"
	"github.com/andresuchdata/smart-reorder/internal/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP router for the reordering API.
func NewRouter(handler *handlers.InventoryHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", handler.Health)

		apiGroup.GET("/products", handler.ListProducts)
		apiGroup.POST("/products/add", handler.AddProduct)
		apiGroup.DELETE("/products/delete/:product_id", handler.DeleteProduct)

		apiGroup.POST("/create-order", handler.CreateOrder)
		apiGroup.GET("/recommendations", handler.GetRecommendations)
		apiGroup.POST("/simulate-spike", handler.SimulateSpike)
		apiGroup.GET("/analytics", handler.GetAnalytics)
		apiGroup.POST("/export", handler.Export)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
