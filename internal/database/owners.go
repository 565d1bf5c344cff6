package database

import (
	"time"

	"property-analyst/internal/models"
)

// GetOwners retrieves the ownership history for a property, most recent
// tenure first.
func (d *DB) GetOwners(brokerID, propertyID string) ([]models.PropertyOwner, error) {
	var owners []models.PropertyOwner
	err := d.db.Where("property_id = ? AND broker_id = ?", propertyID, brokerID).
		Order("start_date DESC").
		Find(&owners).Error
	return owners, err
}

// GetOwnerByID retrieves a single owner row scoped to the broker
func (d *DB) GetOwnerByID(brokerID, id string) (*models.PropertyOwner, error) {
	var owner models.PropertyOwner
	err := d.db.Where("id = ? AND broker_id = ?", id, brokerID).
		First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// ClearCurrentOwner drops the current-owner flag from every owner of the
// property and stamps their end date with today. Callers run this before
// writing a row with the flag set; together the two steps keep at most one
// current owner per property. The sequence is not transactional: two
// concurrent writes can interleave and leave two current owners.
func (d *DB) ClearCurrentOwner(brokerID, propertyID string) error {
	today := time.Now().Truncate(24 * time.Hour)
	return d.db.Model(&models.PropertyOwner{}).
		Where("property_id = ? AND broker_id = ? AND is_current_owner = ?", propertyID, brokerID, true).
		Updates(map[string]interface{}{
			"is_current_owner": false,
			"end_date":         today,
		}).Error
}

// CreateOwner inserts a new owner row
func (d *DB) CreateOwner(o *models.PropertyOwner) error {
	return d.db.Create(o).Error
}

// UpdateOwner applies a whitelisted column map to a broker's owner row
func (d *DB) UpdateOwner(brokerID, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return d.db.Model(&models.PropertyOwner{}).
		Where("id = ? AND broker_id = ?", id, brokerID).
		Updates(fields).Error
}

// DeleteOwner removes an owner row scoped to the broker
func (d *DB) DeleteOwner(brokerID, id string) error {
	return d.db.Where("id = ? AND broker_id = ?", id, brokerID).
		Delete(&models.PropertyOwner{}).Error
}
