package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/api/handlers"
	"github.com/purchasing-admin/backend-go/internal/api/middleware"
	"github.com/purchasing-admin/backend-go/internal/service"
)

type Services struct {
	OrderService   *service.OrderService
	RecapService   *service.RecapService
	ListingService *service.ListingService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.OrderService != nil {
			orderHandler := handlers.NewOrderHandler(services.OrderService)
			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.POST("", orderHandler.CreateDraft)
				orderGroup.GET("/:id", orderHandler.GetDraft)
				orderGroup.POST("/:id/lines", orderHandler.AddLine)
				orderGroup.PATCH("/:id/lines/:lineID", orderHandler.UpdateLine)
				orderGroup.DELETE("/:id/lines/:lineID", orderHandler.RemoveLine)
				orderGroup.POST("/:id/submit", orderHandler.Submit)
			}
		}

		if services.ListingService != nil {
			listingHandler := handlers.NewListingHandler(services.ListingService)
			apiGroup.GET("/purchases", listingHandler.GetPurchases)
			apiGroup.GET("/vendors", listingHandler.GetVendors)
			apiGroup.GET("/tenders", listingHandler.GetTenders)
		}

		if services.RecapService != nil {
			recapHandler := handlers.NewRecapHandler(services.RecapService)
			reportGroup := apiGroup.Group("/reports")
			{
				reportGroup.GET("/recap", recapHandler.GetYearlyRecap)
				reportGroup.GET("/overview", recapHandler.GetOverview)
			}
		}
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
