package handlers

import (
	"net/http"
	"strconv"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/importer"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	service *service.SalesService
}

func NewSalesHandler(service *service.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

func (h *SalesHandler) List(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 {
		days = 30
	}

	sales, err := h.service.ListWindow(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": sales,
		"total": len(sales),
	})
}

func (h *SalesHandler) Record(c *gin.Context) {
	policy, ok := resolvePolicy(c)
	if !ok {
		return
	}

	var records []domain.SaleRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sales payload", "details": err.Error()})
		return
	}

	report, err := h.service.Record(c.Request.Context(), records, policy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *SalesHandler) Import(c *gin.Context) {
	policy, ok := resolvePolicy(c)
	if !ok {
		return
	}

	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	rows, parseErrs, err := importer.ParseSales(file)
	if err != nil {
		respondError(c, err)
		return
	}

	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		respondError(c, parseErrs[0])
		return
	}

	report, err := h.service.Record(c.Request.Context(), rows, policy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mergeParseErrors(report, parseErrs))
}
