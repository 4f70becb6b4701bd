package dto

import (
	"time"

	"github.com/google/uuid"
)

type CourseCreateDTO struct {
	Title       string    `json:"title" binding:"required"`
	Code        string    `json:"code" binding:"required"`
	Description *string   `json:"description"`
	Professor   *string   `json:"professor"`
	Color       *string   `json:"color" binding:"omitempty,hexcolor"`
	Icon        *string   `json:"icon"`
	CreatedBy   uuid.UUID `json:"createdby" binding:"required"`
}

type CourseResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	CreatedBy   uuid.UUID `json:"createdby"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Description *string   `json:"description"`
	Professor   *string   `json:"professor"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseFileCreateDTO records a file that was already uploaded to Path in object storage.
type CourseFileCreateDTO struct {
	UserID    uuid.UUID  `json:"user_id" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	Size      *string    `json:"size"`
	IsPrivate *bool      `json:"is_private"`
	URL       *string    `json:"url"`
	CourseID  *uuid.UUID `json:"course_id"`
	Path      string     `json:"path" binding:"required"`
}

type CourseFileResponseDTO struct {
	ID        uint       `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Size      *string    `json:"size"`
	IsPrivate bool       `json:"is_private"`
	URL       string     `json:"url"`
	CourseID  *uuid.UUID `json:"course_id"`
	Path      string     `json:"path"`
	CreatedAt time.Time  `json:"created_at"`
}
