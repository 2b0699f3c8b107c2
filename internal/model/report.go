package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report types recognised by the system.
const (
	ReportOccupancy     = "occupancy"
	ReportRevenue       = "revenue"
	ReportUserActivity  = "user_activity"
	ReportHostelSummary = "hostel_summary"
)

// ValidReportType reports whether t is a recognised report type.
func ValidReportType(t string) bool {
	switch t {
	case ReportOccupancy, ReportRevenue, ReportUserActivity, ReportHostelSummary:
		return true
	}
	return false
}

// Report is an immutable administrative report. Only deletion is allowed
// after creation.
type Report struct {
	ID          uuid.UUID              `json:"id" gorm:"type:char(36);primaryKey"`
	ReportType  string                 `json:"reportType" gorm:"size:50;not null;index"`
	Title       string                 `json:"title" gorm:"size:255;not null"`
	Description string                 `json:"description,omitempty" gorm:"size:2000"`
	GeneratedBy uuid.UUID              `json:"generatedBy" gorm:"type:char(36);not null;index"`
	HostelID    *uuid.UUID             `json:"hostelId,omitempty" gorm:"type:char(36);index"`
	Data        map[string]interface{} `json:"data" gorm:"serializer:json"`
	CreatedAt   time.Time              `json:"createdAt"`

	// Relations
	Generator *User   `json:"generator,omitempty" gorm:"foreignKey:GeneratedBy"`
	Hostel    *Hostel `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
