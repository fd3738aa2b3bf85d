package handlers

import (
	"net/http"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetItems(c *gin.Context) {
	items, warnings, err := h.service.ListIngredientAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if warnings == nil {
		warnings = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"warnings": warnings,
	})
}

func (h *AnalyticsHandler) GetItem(c *gin.Context) {
	item, err := h.service.GetIngredientAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) GetProcurement(c *gin.Context) {
	plan, err := h.service.GetProcurementPlan(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": plan,
		"total": len(plan),
	})
}
