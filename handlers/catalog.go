package handlers

import (
	"net/http"

	"tripwise/models"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only package catalog.
type CatalogHandler struct {
	Catalog *models.Catalog
}

func NewCatalogHandler(catalog *models.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListPackages returns every catalog entry.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages": h.Catalog.Packages(),
		"count":    h.Catalog.Len(),
	})
}

// GetPackage returns one catalog entry by ID.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id := c.Param("id")
	pkg, ok := h.Catalog.ByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Package not found", id)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListDestinations returns the destination names known to the planner.
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.Catalog.Destinations()})
}
