package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a portal-wide notice. Managers may create announcements
// but only manage their own; owners and super admins manage any.
type Announcement struct {
	BaseModel
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body        string     `json:"body" gorm:"not null;size:5000" validate:"required,max=5000"`
	IsPinned    bool       `json:"is_pinned" gorm:"default:false"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
