package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyOwner is one entry in a property's ownership-history timeline.
// At most one row per property carries IsCurrentOwner=true; the handlers
// clear the flag on every other row before writing a new current owner.
type PropertyOwner struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string `gorm:"type:varchar(36);not null;index" json:"property_id"`
	BrokerID   string `gorm:"type:varchar(36);not null;index" json:"broker_id"`

	OwnerName   string `gorm:"type:varchar(200);not null" json:"owner_name"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number,omitempty"`

	StartDate *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`

	IsCurrentOwner bool `gorm:"not null;default:false;index" json:"is_current_owner"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PropertyOwner) TableName() string {
	return "property_owners"
}

func (o *PropertyOwner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
