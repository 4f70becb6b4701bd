package dto

import (
	"time"

	"github.com/google/uuid"
)

type UniversityCreateDTO struct {
	ID      string  `json:"id" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	LogoURL *string `json:"logo_url" binding:"omitempty,url"`
}

type UniversityResponseDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileCreateDTO registers the profile of an identity-provider user.
type ProfileCreateDTO struct {
	UserID             uuid.UUID `json:"user_id" binding:"required"`
	FullName           *string   `json:"full_name"`
	Username           *string   `json:"username"`
	Email              *string   `json:"email" binding:"omitempty,email"`
	UniversityID       *string   `json:"university_id"`
	AvatarURL          *string   `json:"avatar_url"`
	Major              *string   `json:"major"`
	Year               *string   `json:"year"`
	IsPushNotification *bool     `json:"isPushNotification"`
}

type ProfileResponseDTO struct {
	UserID             uuid.UUID `json:"user_id"`
	FullName           *string   `json:"full_name"`
	Username           *string   `json:"username"`
	Email              *string   `json:"email"`
	UniversityID       *string   `json:"university_id"`
	AvatarURL          *string   `json:"avatar_url"`
	Major              *string   `json:"major"`
	Year               *string   `json:"year"`
	IsPushNotification bool      `json:"isPushNotification"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
