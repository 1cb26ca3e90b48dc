package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

// ListingHandler serves the index pages. Every endpoint reads the same
// query parameters (q, status, category, has_po, urgent, active); absent or
// sentinel values deactivate that filter.
type ListingHandler struct {
	listingService *service.ListingService
}

func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func criteriaFromQuery(c *gin.Context) service.ListCriteria {
	return service.ListCriteria{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		HasPO:    c.Query("has_po"),
		Urgent:   c.Query("urgent"),
		Active:   c.Query("active"),
	}
}

// GetPurchases returns the filtered purchase index.
func (h *ListingHandler) GetPurchases(c *gin.Context) {
	records, err := h.listingService.Purchases(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to list purchases")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch purchases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": records, "count": len(records)})
}

// GetVendors returns the filtered vendor index.
func (h *ListingHandler) GetVendors(c *gin.Context) {
	vendors, err := h.listingService.Vendors(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to list vendors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

// GetTenders returns the filtered tender index.
func (h *ListingHandler) GetTenders(c *gin.Context) {
	tenders, err := h.listingService.Tenders(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to list tenders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenders": tenders, "count": len(tenders)})
}
