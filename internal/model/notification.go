package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference has one row per profile; it is written through an upsert only.
type NotificationPreference struct {
	UserID              uuid.UUID `gorm:"type:uuid;primarykey" json:"user_id"`
	EmailNotifications  bool      `json:"email_notifications" gorm:"not null"`
	PushNotifications   bool      `json:"push_notifications" gorm:"not null"`
	CourseUpdates       bool      `json:"course_updates" gorm:"not null"`
	AssignmentReminders bool      `json:"assignment_reminders" gorm:"not null"`
	DiscussionActivity  bool      `json:"discussion_activity" gorm:"not null"`
	UpdatedAt           time.Time `json:"updated_at"`
}
