package handlers

import (
	"log"
	"net/http"
	"strconv"

	"property-analyst/internal/auth"
	"property-analyst/internal/database"
	"property-analyst/internal/search"

	"github.com/gin-gonic/gin"
)

// QuickSearchHandler serves the optional Meilisearch-backed instant search
type QuickSearchHandler struct {
	store *database.DB
	quick *search.QuickSearchClient
}

// NewQuickSearchHandler creates a new quick-search handler
func NewQuickSearchHandler(store *database.DB, quick *search.QuickSearchClient) *QuickSearchHandler {
	return &QuickSearchHandler{store: store, quick: quick}
}

// Quick queries the index scoped to the requesting broker
func (h *QuickSearchHandler) Quick(c *gin.Context) {
	query := c.Query("q")
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		limit = 20
	}

	docs, err := h.quick.QuickSearch(auth.BrokerID(c), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quick search failed.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Reindex rebuilds the index from the broker's properties
func (h *QuickSearchHandler) Reindex(c *gin.Context) {
	brokerID := auth.BrokerID(c)

	properties, err := h.store.GetProperties(brokerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties.", "details": err.Error()})
		return
	}

	if err := h.quick.IndexProperties(properties); err != nil {
		log.Printf("Warning: reindex failed for broker %s: %v", brokerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reindex failed.", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reindex complete",
		"indexed": len(properties),
	})
}
