package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"property-analyst/internal/activity"
	"property-analyst/internal/auth"
	"property-analyst/internal/database"
	"property-analyst/internal/models"
	"property-analyst/internal/search"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PropertyHandler handles listing CRUD, search and activity-log requests
type PropertyHandler struct {
	store    *database.DB
	activity *activity.Logger
	resolver *search.Resolver
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(store *database.DB, logger *activity.Logger) *PropertyHandler {
	return &PropertyHandler{
		store:    store,
		activity: logger,
		resolver: search.NewResolver(store.DB()),
	}
}

// List returns all of the broker's properties with owners nested
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.store.GetProperties(auth.BrokerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Search runs the layered property search
func (h *PropertyHandler) Search(c *gin.Context) {
	params := search.Params{
		Query:     c.Query("q"),
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		Furnished: c.Query("furnished"),
		Area:      c.Query("area"),
		City:      c.Query("city"),
		SurveyNo:  c.Query("survey_no"),
		OwnerName: c.Query("owner_name"),
	}

	if bhkStr := c.Query("bhk"); bhkStr != "" {
		if bhk, err := strconv.Atoi(bhkStr); err == nil {
			params.BHK = &bhk
		}
	}
	if minStr := c.Query("min_price"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			params.MinPrice = &min
		}
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			params.MaxPrice = &max
		}
	}

	results, err := h.resolver.Resolve(auth.BrokerID(c), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Get returns a single property
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.store.GetPropertyByID(auth.BrokerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, property)
}

// Create inserts a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	brokerID := auth.BrokerID(c)

	var payload models.PropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if payload.PropertyType == nil || *payload.PropertyType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_type is required."})
		return
	}

	property := &models.Property{BrokerID: brokerID}
	applyPayload(property, &payload)

	if err := h.store.CreateProperty(property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property.", "details": err.Error()})
		return
	}

	if err := h.activity.PropertyCreated(brokerID, property); err != nil {
		log.Printf("Warning: failed to record created log for property %s: %v", property.ID, err)
	}

	c.JSON(http.StatusCreated, property)
}

// Update applies a partial update and records the field-level diff
func (h *PropertyHandler) Update(c *gin.Context) {
	brokerID := auth.BrokerID(c)
	id := c.Param("id")

	existing, err := h.store.GetPropertyByID(brokerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property.", "details": err.Error()})
		return
	}

	var payload models.PropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateProperty(brokerID, id, payload.Fields()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property.", "details": err.Error()})
		return
	}

	// Log failures never surface to the caller
	if err := h.activity.PropertyUpdated(brokerID, id, existing, &payload); err != nil {
		log.Printf("Warning: failed to record update log for property %s: %v", id, err)
	}

	updated, err := h.store.GetPropertyByID(brokerID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a property and its owners; logs stay behind
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProperty(auth.BrokerID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully."})
}

// GetLogs returns the property's activity log
func (h *PropertyHandler) GetLogs(c *gin.Context) {
	logs, err := h.store.GetLogs(auth.BrokerID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// applyPayload copies payload fields onto a fresh property record
func applyPayload(p *models.Property, payload *models.PropertyPayload) {
	if payload.PropertyType != nil {
		p.PropertyType = models.PropertyType(*payload.PropertyType)
	}
	p.Status = models.PropertyStatusAvailable
	if payload.Status != nil && *payload.Status != "" {
		p.Status = models.PropertyStatus(*payload.Status)
	}
	if payload.City != nil {
		p.City = *payload.City
	}
	if payload.Area != nil {
		p.Area = *payload.Area
	}
	if payload.Locality != nil {
		p.Locality = *payload.Locality
	}
	if payload.Address != nil {
		p.Address = *payload.Address
	}
	p.Lat = payload.Lat
	p.Lng = payload.Lng
	p.TotalPrice = payload.TotalPrice
	p.PricePerSqft = payload.PricePerSqft
	p.PlotArea = payload.PlotArea
	p.BuiltUpArea = payload.BuiltUpArea
	p.CarpetArea = payload.CarpetArea
	p.BHK = payload.BHK
	if payload.FurnishedStatus != nil {
		p.FurnishedStatus = *payload.FurnishedStatus
	}
	p.FloorNumber = payload.FloorNumber
	p.TotalFloors = payload.TotalFloors
	if payload.SurveyNo != nil {
		p.SurveyNo = *payload.SurveyNo
	}
	if payload.Notes != nil {
		p.Notes = *payload.Notes
	}
}
