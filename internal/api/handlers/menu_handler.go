package handlers

import (
	"net/http"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/importer"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menu    *service.MenuService
	costing *service.CostingService
}

func NewMenuHandler(menu *service.MenuService, costing *service.CostingService) *MenuHandler {
	return &MenuHandler{menu: menu, costing: costing}
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	items, err := h.menu.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.menu.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) SaveItem(c *gin.Context) {
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item payload", "details": err.Error()})
		return
	}

	if id := c.Param("id"); id != "" {
		item.ID = id
	}

	if err := h.menu.SaveItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "id": item.ID})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if err := h.menu.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *MenuHandler) ListRecipes(c *gin.Context) {
	lines, err := h.menu.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": lines,
		"total": len(lines),
	})
}

func (h *MenuHandler) SaveRecipe(c *gin.Context) {
	var line domain.RecipeLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe payload", "details": err.Error()})
		return
	}

	if err := h.menu.SaveRecipe(c.Request.Context(), line); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "id": line.ID})
}

// GetItemCost returns the live cost/margin view for one menu item. A 100%
// margin with has_recipe=false means "no recipe data", not a real margin.
func (h *MenuHandler) GetItemCost(c *gin.Context) {
	cost, err := h.costing.GetMenuItemCost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cost)
}

func (h *MenuHandler) ListItemCosts(c *gin.Context) {
	costs, err := h.costing.ListMenuItemCosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": costs,
		"total": len(costs),
	})
}

func (h *MenuHandler) ImportItems(c *gin.Context) {
	policy, ok := resolvePolicy(c)
	if !ok {
		return
	}

	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseMenuItems(file)
	if err != nil {
		respondError(c, err)
		return
	}

	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		respondError(c, parseErrs[0])
		return
	}

	report, err := h.menu.ImportItems(c.Request.Context(), rows, policy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mergeParseErrors(report, parseErrs))
}

func (h *MenuHandler) ImportRecipes(c *gin.Context) {
	policy, ok := resolvePolicy(c)
	if !ok {
		return
	}

	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseRecipes(file)
	if err != nil {
		respondError(c, err)
		return
	}

	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		respondError(c, parseErrs[0])
		return
	}

	report, err := h.menu.ImportRecipes(c.Request.Context(), rows, policy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mergeParseErrors(report, parseErrs))
}
