package models

import (
	"time"

	"github.com/google/uuid"
)

// TrainingStatus represents progress on an assigned training course
type TrainingStatus string

const (
	TrainingStatusAssigned   TrainingStatus = "assigned"
	TrainingStatusInProgress TrainingStatus = "in_progress"
	TrainingStatusCompleted  TrainingStatus = "completed"
)

// Training is a course or certification employees can be assigned.
type Training struct {
	BaseModel
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"size:2000" validate:"max=2000"`
	ContentURL  string `json:"content_url" gorm:"size:500" validate:"omitempty,url,max=500"`

	Assignments []TrainingAssignment `json:"assignments,omitempty" gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Training
func (Training) TableName() string {
	return "trainings"
}

// TrainingAssignment links a training course to a user with due-date and
// completion tracking. Listing is scoped through the resolver like
// submissions and directory entries.
type TrainingAssignment struct {
	BaseModel
	TrainingID   uuid.UUID      `json:"training_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_training_user,where:deleted_at IS NULL" validate:"required"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_training_user,where:deleted_at IS NULL" validate:"required"`
	AssignedByID uuid.UUID      `json:"assigned_by_id" gorm:"type:uuid;not null" validate:"required"`
	Status       TrainingStatus `json:"status" gorm:"type:varchar(20);not null;default:'assigned'"`
	DueDate      *time.Time     `json:"due_date,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`

	Training Training `json:"training,omitempty" gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TrainingAssignment
func (TrainingAssignment) TableName() string {
	return "training_assignments"
}
