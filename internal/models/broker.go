package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Broker is an authenticated account. Every property, owner and log row
// carries a broker id and every query filters by it.
type Broker struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Broker) TableName() string {
	return "brokers"
}

func (b *Broker) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
