package handlers

import (
	"net/http"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/importer"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": rows,
		"total": len(rows),
	})
}

func (h *InventoryHandler) Get(c *gin.Context) {
	row, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *InventoryHandler) Save(c *gin.Context) {
	var row domain.Ingredient
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient payload", "details": err.Error()})
		return
	}

	if id := c.Param("id"); id != "" {
		row.ID = id
	}

	if err := h.service.Save(c.Request.Context(), row); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "id": row.ID})
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Import accepts a CSV upload of ingredient rows. The policy query param
// picks skip_invalid (default) or reject_batch.
func (h *InventoryHandler) Import(c *gin.Context) {
	policy, ok := resolvePolicy(c)
	if !ok {
		return
	}

	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseIngredients(file)
	if err != nil {
		respondError(c, err)
		return
	}

	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		respondError(c, parseErrs[0])
		return
	}

	report, err := h.service.Import(c.Request.Context(), rows, policy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mergeParseErrors(report, parseErrs))
}
