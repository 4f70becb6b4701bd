package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceDTO is a full preference set; a toggle left out is written as true.
type NotificationPreferenceDTO struct {
	UserID              uuid.UUID `json:"user_id" binding:"required"`
	EmailNotifications  *bool     `json:"email_notifications"`
	PushNotifications   *bool     `json:"push_notifications"`
	CourseUpdates       *bool     `json:"course_updates"`
	AssignmentReminders *bool     `json:"assignment_reminders"`
	DiscussionActivity  *bool     `json:"discussion_activity"`
}

type NotificationPreferenceResponseDTO struct {
	UserID              uuid.UUID `json:"user_id"`
	EmailNotifications  bool      `json:"email_notifications"`
	PushNotifications   bool      `json:"push_notifications"`
	CourseUpdates       bool      `json:"course_updates"`
	AssignmentReminders bool      `json:"assignment_reminders"`
	DiscussionActivity  bool      `json:"discussion_activity"`
	UpdatedAt           time.Time `json:"updated_at"`
}
