package database

import (
	"property-analyst/internal/models"
)

// GetBrokerByEmail looks up a broker account by email
func (d *DB) GetBrokerByEmail(email string) (*models.Broker, error) {
	var broker models.Broker
	err := d.db.Where("email = ?", email).First(&broker).Error
	if err != nil {
		return nil, err
	}
	return &broker, nil
}

// CreateBroker inserts a new broker account
func (d *DB) CreateBroker(b *models.Broker) error {
	return d.db.Create(b).Error
}
