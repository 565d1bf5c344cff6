package database

import (
	"property-analyst/internal/models"
)

// GetProperties retrieves all of a broker's properties, newest first, with
// their owner lists attached.
func (d *DB) GetProperties(brokerID string) ([]models.Property, error) {
	var properties []models.Property
	err := d.db.Preload("Owners").
		Where("broker_id = ?", brokerID).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

// GetPropertyByID retrieves a single property scoped to the broker. A row
// owned by another broker comes back as gorm.ErrRecordNotFound.
func (d *DB) GetPropertyByID(brokerID, id string) (*models.Property, error) {
	var property models.Property
	err := d.db.Preload("Owners").
		Where("id = ? AND broker_id = ?", id, brokerID).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a new property row
func (d *DB) CreateProperty(p *models.Property) error {
	return d.db.Create(p).Error
}

// UpdateProperty applies a whitelisted column map to a broker's property
func (d *DB) UpdateProperty(brokerID, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return d.db.Model(&models.Property{}).
		Where("id = ? AND broker_id = ?", id, brokerID).
		Updates(fields).Error
}

// DeleteProperty removes a property and its owner rows. Log rows are kept;
// the activity trail outlives the listing.
func (d *DB) DeleteProperty(brokerID, id string) error {
	if err := d.db.Where("property_id = ? AND broker_id = ?", id, brokerID).
		Delete(&models.PropertyOwner{}).Error; err != nil {
		return err
	}
	return d.db.Where("id = ? AND broker_id = ?", id, brokerID).
		Delete(&models.Property{}).Error
}
