// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/api/handlers"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/api/middleware"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Analytics *service.AnalyticsService
	Costing   *service.CostingService
	Inventory *service.InventoryService
	Menu      *service.MenuService
	Sales     *service.SalesService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
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

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Analytics != nil {
			analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)
			analyticsGroup := apiGroup.Group("/analytics")
			{
				analyticsGroup.GET("/ingredients", analyticsHandler.GetItems)
				analyticsGroup.GET("/ingredients/:id", analyticsHandler.GetItem)
				analyticsGroup.GET("/dashboard", analyticsHandler.GetDashboard)
				analyticsGroup.GET("/procurement", analyticsHandler.GetProcurement)
			}
		}

		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			inventoryGroup := apiGroup.Group("/ingredients")
			{
				inventoryGroup.GET("", inventoryHandler.List)
				inventoryGroup.GET("/:id", inventoryHandler.Get)
				inventoryGroup.POST("", inventoryHandler.Save)
				inventoryGroup.PUT("/:id", inventoryHandler.Save)
				inventoryGroup.DELETE("/:id", inventoryHandler.Delete)
				inventoryGroup.POST("/import", inventoryHandler.Import)
			}
		}

		if services.Menu != nil && services.Costing != nil {
			menuHandler := handlers.NewMenuHandler(services.Menu, services.Costing)
			menuGroup := apiGroup.Group("/menu")
			{
				menuGroup.GET("", menuHandler.ListItems)
				menuGroup.GET("/costs", menuHandler.ListItemCosts)
				menuGroup.GET("/:id", menuHandler.GetItem)
				menuGroup.GET("/:id/cost", menuHandler.GetItemCost)
				menuGroup.POST("", menuHandler.SaveItem)
				menuGroup.PUT("/:id", menuHandler.SaveItem)
				menuGroup.DELETE("/:id", menuHandler.DeleteItem)
				menuGroup.POST("/import", menuHandler.ImportItems)
			}

			recipeGroup := apiGroup.Group("/recipes")
			{
				recipeGroup.GET("", menuHandler.ListRecipes)
				recipeGroup.POST("", menuHandler.SaveRecipe)
				recipeGroup.POST("/import", menuHandler.ImportRecipes)
			}
		}

		if services.Sales != nil {
			salesHandler := handlers.NewSalesHandler(services.Sales)
			salesGroup := apiGroup.Group("/sales")
			{
				salesGroup.GET("", salesHandler.List)
				salesGroup.POST("", salesHandler.Record)
				salesGroup.POST("/import", salesHandler.Import)
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
