package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Hostel represents a managed hostel property.
type Hostel struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	HostelName     string          `json:"hostelName" gorm:"size:255;not null;index"`
	Address        string          `json:"address" gorm:"size:500;not null"`
	City           string          `json:"city" gorm:"size:100;not null"`
	State          string          `json:"state" gorm:"size:100;not null"`
	Pincode        string          `json:"pincode" gorm:"size:20;not null"`
	TotalRooms     int             `json:"totalRooms" gorm:"not null"`
	AvailableRooms int             `json:"availableRooms" gorm:"not null"`
	CostPerBed     decimal.Decimal `json:"costPerBed" gorm:"type:decimal(10,2);not null"`
	Description    string          `json:"description,omitempty" gorm:"size:2000"`
	Facilities     []string        `json:"facilities" gorm:"serializer:json"`
	CreatedBy      uuid.UUID       `json:"createdBy" gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	// Relations
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// BeforeCreate sets UUID before creating the record.
func (h *Hostel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
