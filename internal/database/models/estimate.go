package models

import (
	"github.com/google/uuid"
)

// Estimate is a set of line items from one source (carrier or contractor)
// for a job, used by the comparison tool.
type Estimate struct {
	BaseModel
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index" validate:"required"`
	JobName     string    `json:"job_name" gorm:"not null;size:200" validate:"required,max=200"`
	Source      string    `json:"source" gorm:"not null;size:100" validate:"required,max=100"`

	Items     []EstimateItem `json:"items,omitempty" gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
	CreatedBy User           `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Estimate
func (Estimate) TableName() string {
	return "estimates"
}

// EstimateItem is a single line item within an estimate.
type EstimateItem struct {
	BaseModel
	EstimateID  uuid.UUID `json:"estimate_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description string    `json:"description" gorm:"not null;size:500" validate:"required,max=500"`
	Quantity    float64   `json:"quantity" gorm:"not null;default:1" validate:"gte=0"`
	Unit        string    `json:"unit" gorm:"size:20" validate:"max=20"`
	UnitPrice   float64   `json:"unit_price" gorm:"not null;default:0" validate:"gte=0"`

	Estimate Estimate `json:"estimate,omitempty" gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EstimateItem
func (EstimateItem) TableName() string {
	return "estimate_items"
}

// Total returns the extended price of the line item.
func (i *EstimateItem) Total() float64 {
	return i.Quantity * i.UnitPrice
}
