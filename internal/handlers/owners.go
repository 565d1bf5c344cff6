package handlers

import (
	"errors"
	"log"
	"net/http"

	"property-analyst/internal/activity"
	"property-analyst/internal/auth"
	"property-analyst/internal/database"
	"property-analyst/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OwnerHandler handles ownership-history requests
type OwnerHandler struct {
	store    *database.DB
	activity *activity.Logger
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(store *database.DB, logger *activity.Logger) *OwnerHandler {
	return &OwnerHandler{store: store, activity: logger}
}

// List returns the ownership history of a property
func (h *OwnerHandler) List(c *gin.Context) {
	brokerID := auth.BrokerID(c)
	propertyID := c.Param("id")

	if _, err := h.store.GetPropertyByID(brokerID, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch owners.", "details": err.Error()})
		return
	}

	owners, err := h.store.GetOwners(brokerID, propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch owners.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, owners)
}

// Add inserts a new owner on a property's timeline
func (h *OwnerHandler) Add(c *gin.Context) {
	brokerID := auth.BrokerID(c)
	propertyID := c.Param("id")

	if _, err := h.store.GetPropertyByID(brokerID, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add owner.", "details": err.Error()})
		return
	}

	var payload models.OwnerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if payload.OwnerName == nil || *payload.OwnerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_name is required."})
		return
	}

	// Clear-then-write keeps at most one current owner. The clearing error
	// is deliberately not propagated; the insert proceeds regardless.
	if payload.IsCurrentOwner != nil && *payload.IsCurrentOwner {
		if err := h.store.ClearCurrentOwner(brokerID, propertyID); err != nil {
			log.Printf("Warning: failed to clear current owner for property %s: %v", propertyID, err)
		}
	}

	owner := &models.PropertyOwner{
		PropertyID: propertyID,
		BrokerID:   brokerID,
	}
	applyOwnerPayload(owner, &payload)

	if err := h.store.CreateOwner(owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add owner.", "details": err.Error()})
		return
	}

	if err := h.activity.OwnerAdded(brokerID, propertyID, owner.OwnerName); err != nil {
		log.Printf("Warning: failed to record owner_added log for property %s: %v", propertyID, err)
	}

	c.JSON(http.StatusCreated, owner)
}

// Update applies a partial update to an owner row
func (h *OwnerHandler) Update(c *gin.Context) {
	brokerID := auth.BrokerID(c)
	id := c.Param("id")

	existing, err := h.store.GetOwnerByID(brokerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update owner.", "details": err.Error()})
		return
	}

	var payload models.OwnerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if payload.IsCurrentOwner != nil && *payload.IsCurrentOwner {
		if err := h.store.ClearCurrentOwner(brokerID, existing.PropertyID); err != nil {
			log.Printf("Warning: failed to clear current owner for property %s: %v", existing.PropertyID, err)
		}
	}

	if err := h.store.UpdateOwner(brokerID, id, payload.Fields()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update owner.", "details": err.Error()})
		return
	}

	if err := h.activity.OwnerUpdated(brokerID, existing.PropertyID, existing, &payload); err != nil {
		log.Printf("Warning: failed to record owner_updated log for property %s: %v", existing.PropertyID, err)
	}

	updated, err := h.store.GetOwnerByID(brokerID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update owner.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes an owner row
func (h *OwnerHandler) Delete(c *gin.Context) {
	brokerID := auth.BrokerID(c)
	id := c.Param("id")

	existing, err := h.store.GetOwnerByID(brokerID, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete owner.", "details": err.Error()})
		return
	}

	if err := h.store.DeleteOwner(brokerID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete owner.", "details": err.Error()})
		return
	}

	if existing != nil {
		if err := h.activity.OwnerRemoved(brokerID, existing.PropertyID, existing.OwnerName); err != nil {
			log.Printf("Warning: failed to record owner_removed log for property %s: %v", existing.PropertyID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Owner deleted successfully."})
}

// applyOwnerPayload copies payload fields onto a fresh owner record
func applyOwnerPayload(o *models.PropertyOwner, payload *models.OwnerPayload) {
	if payload.OwnerName != nil {
		o.OwnerName = *payload.OwnerName
	}
	if payload.PhoneNumber != nil {
		o.PhoneNumber = *payload.PhoneNumber
	}
	o.StartDate = models.ParseDate(payload.StartDate)
	o.EndDate = models.ParseDate(payload.EndDate)
	if payload.IsCurrentOwner != nil {
		o.IsCurrentOwner = *payload.IsCurrentOwner
	}
	if payload.Notes != nil {
		o.Notes = *payload.Notes
	}
}
