package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pickwise/laptop-advisor-backend/internal/http/response"
	"github.com/pickwise/laptop-advisor-backend/internal/services"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/laptops
func (h *CatalogHandler) ListLaptops(c *gin.Context) {
	laptops := h.catalog.List()

	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		filtered := make([]types.Laptop, 0, len(laptops))
		for _, l := range laptops {
			if strings.EqualFold(l.Brand, brand) {
				filtered = append(filtered, l)
			}
		}
		laptops = filtered
	}

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a positive integer"))
			return
		}
		if limit < len(laptops) {
			laptops = laptops[:limit]
		}
	}

	response.RespondOK(c, gin.H{"laptops": laptops, "count": len(laptops)})
}

// GET /api/laptops/:id
func (h *CatalogHandler) GetLaptop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_laptop_id", err)
		return
	}
	laptop, ok := h.catalog.Get(id)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "laptop_not_found", errors.New("no laptop with that id"))
		return
	}
	response.RespondOK(c, laptop)
}

// GET /api/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands := h.catalog.Brands()
	response.RespondOK(c, gin.H{"brands": brands, "count": len(brands)})
}

// GET /api/usage-types
func (h *CatalogHandler) ListUsageTypes(c *gin.Context) {
	response.RespondOK(c, gin.H{"usage_types": h.catalog.UsageTypes()})
}

// POST /api/catalog/reload
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	n, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "catalog_reload_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"reloaded": true, "count": n})
}
