package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckinStatus represents the lifecycle state of a daily check-in submission
type CheckinStatus string

const (
	CheckinStatusOpen      CheckinStatus = "open"
	CheckinStatusAssigned  CheckinStatus = "assigned"
	CheckinStatusCompleted CheckinStatus = "completed"
)

// CheckinSubmission is an employee's daily check-in. Submissions can be
// assigned to a direct report of an elevated manager for follow-up, and
// completed by the assignee or an elevated supervisor.
type CheckinSubmission struct {
	BaseModel
	UserID       uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date         time.Time     `json:"date" gorm:"not null;index" validate:"required"`
	JobSite      string        `json:"job_site" gorm:"size:200" validate:"max=200"`
	Notes        string        `json:"notes" gorm:"size:2000" validate:"max=2000"`
	Status       CheckinStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	AssignedToID *uuid.UUID    `json:"assigned_to_id,omitempty" gorm:"type:uuid;index"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`

	User       User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AssignedTo *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for CheckinSubmission
func (CheckinSubmission) TableName() string {
	return "checkin_submissions"
}

// SubmissionAccessGrant gives a single user cross-employee submission
// visibility without holding an elevated role or department.
type SubmissionAccessGrant struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_access_grant_user,where:deleted_at IS NULL" validate:"required"`
	GrantedBy uuid.UUID `json:"granted_by" gorm:"type:uuid;not null" validate:"required"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SubmissionAccessGrant
func (SubmissionAccessGrant) TableName() string {
	return "submission_access_grants"
}
