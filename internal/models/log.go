package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyLog is an append-only activity-log entry. Rows are never updated
// or deleted individually.
type PropertyLog struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string `gorm:"type:varchar(36);not null;index" json:"property_id"`
	BrokerID   string `gorm:"type:varchar(36);not null;index" json:"broker_id"`

	Action    LogAction `gorm:"type:varchar(20);not null" json:"action"`
	FieldName string    `gorm:"type:varchar(50)" json:"field_name,omitempty"`
	OldValue  *string   `gorm:"type:text" json:"old_value,omitempty"`
	NewValue  *string   `gorm:"type:text" json:"new_value,omitempty"`

	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (PropertyLog) TableName() string {
	return "property_logs"
}

func (l *PropertyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LogAction is the kind of recorded activity
type LogAction string

const (
	LogActionCreated      LogAction = "created"
	LogActionUpdated      LogAction = "updated"
	LogActionOwnerAdded   LogAction = "owner_added"
	LogActionOwnerUpdated LogAction = "owner_updated"
	LogActionOwnerRemoved LogAction = "owner_removed"
)
