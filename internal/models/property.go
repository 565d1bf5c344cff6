package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	BrokerID string `gorm:"type:varchar(36);not null;index" json:"broker_id"`

	PropertyType PropertyType   `gorm:"type:varchar(20);not null;index" json:"property_type"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`

	// Location
	City     string   `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Area     string   `gorm:"type:varchar(200)" json:"area,omitempty"`
	Locality string   `gorm:"type:varchar(200)" json:"locality,omitempty"`
	Address  string   `gorm:"type:text" json:"address,omitempty"`
	Lat      *float64 `gorm:"type:decimal(10,6)" json:"lat,omitempty"`
	Lng      *float64 `gorm:"type:decimal(10,6)" json:"lng,omitempty"`

	// Pricing
	TotalPrice   *float64 `gorm:"type:decimal(14,2);index" json:"total_price,omitempty"`
	PricePerSqft *float64 `gorm:"type:decimal(12,2)" json:"price_per_sqft,omitempty"`

	// Dimensions
	PlotArea    *float64 `gorm:"type:decimal(12,2)" json:"plot_area,omitempty"`
	BuiltUpArea *float64 `gorm:"type:decimal(12,2)" json:"built_up_area,omitempty"`
	CarpetArea  *float64 `gorm:"type:decimal(12,2)" json:"carpet_area,omitempty"`

	// Residential
	BHK             *int   `gorm:"type:int" json:"bhk,omitempty"`
	FurnishedStatus string `gorm:"type:varchar(30)" json:"furnished_status,omitempty"`
	FloorNumber     *int   `gorm:"type:int" json:"floor_number,omitempty"`
	TotalFloors     *int   `gorm:"type:int" json:"total_floors,omitempty"`

	// Plot / agriculture
	SurveyNo string `gorm:"type:varchar(50)" json:"survey_no,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Owners []PropertyOwner `gorm:"foreignKey:PropertyID" json:"property_owners"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PropertyType is the listing classification
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypePlot        PropertyType = "plot"
	PropertyTypeAgriculture PropertyType = "agriculture"
)

// PropertyStatus is the listing lifecycle status
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)
