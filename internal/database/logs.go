package database

import (
	"property-analyst/internal/models"
)

// InsertLogs appends a batch of activity-log rows
func (d *DB) InsertLogs(logs []models.PropertyLog) error {
	if len(logs) == 0 {
		return nil
	}
	return d.db.Create(&logs).Error
}

// GetLogs retrieves the activity log for a property, newest first
func (d *DB) GetLogs(brokerID, propertyID string) ([]models.PropertyLog, error) {
	var logs []models.PropertyLog
	err := d.db.Where("property_id = ? AND broker_id = ?", propertyID, brokerID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
