package models

import (
	"github.com/google/uuid"
)

// Contact is an entry in the shared contact directory (adjusters, suppliers,
// property managers). Visibility follows the creator's scope.
type Contact struct {
	BaseModel
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Company     string    `json:"company" gorm:"size:200" validate:"max=200"`
	Email       string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20" validate:"max=20"`
	Notes       string    `json:"notes" gorm:"size:2000" validate:"max=2000"`

	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// Contractor is a subcontractor record with trade and licensing details.
type Contractor struct {
	BaseModel
	CreatedByID   uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index" validate:"required"`
	CompanyName   string    `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	ContactName   string    `json:"contact_name" gorm:"size:200" validate:"max=200"`
	Trade         string    `json:"trade" gorm:"size:100" validate:"max=100"`
	Email         string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	PhoneNumber   string    `json:"phone_number" gorm:"size:20" validate:"max=20"`
	LicenseNumber string    `json:"license_number" gorm:"size:50" validate:"max=50"`
	IsInsured     bool      `json:"is_insured" gorm:"default:false"`
	Notes         string    `json:"notes" gorm:"size:2000" validate:"max=2000"`

	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contractor
func (Contractor) TableName() string {
	return "contractors"
}
