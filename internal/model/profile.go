package model

import (
	"time"

	"github.com/google/uuid"
)

type University struct {
	ID        string    `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	LogoURL   *string   `json:"logo_url,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is keyed by the identity provider's user id, which the caller supplies.
type Profile struct {
	UserID             uuid.UUID   `gorm:"type:uuid;primarykey" json:"user_id"`
	FullName           *string     `json:"full_name,omitempty" gorm:"type:text"`
	Username           *string     `json:"username,omitempty" gorm:"type:text;uniqueIndex"`
	Email              *string     `json:"email,omitempty" gorm:"type:text;uniqueIndex"`
	UniversityID       *string     `json:"university_id,omitempty" gorm:"index"`
	University         *University `json:"-" gorm:"foreignKey:UniversityID"`
	AvatarURL          *string     `json:"avatar_url,omitempty" gorm:"type:text"`
	Major              *string     `json:"major,omitempty" gorm:"type:text"`
	Year               *string     `json:"year,omitempty" gorm:"type:text"`
	IsPushNotification bool        `json:"isPushNotification" gorm:"column:is_push_notification;not null"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`

	// Rows keyed by user_id. Declared here so the foreign keys point at profiles.
	CourseFiles    []CourseFile             `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Participations []CompetitionParticipant `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Comments       []SharedNoteComment      `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}
