package dto

import (
	"time"

	"github.com/google/uuid"
)

type ExtractedTopicCreateDTO struct {
	CourseFileID uint       `json:"coursefile_id" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	CourseID     *uuid.UUID `json:"course_id"`
}

type ExtractedTopicResponseDTO struct {
	ID           uint       `json:"id"`
	CourseFileID uint       `json:"coursefile_id"`
	Name         string     `json:"name"`
	CourseID     *uuid.UUID `json:"course_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TopicExtractionDTO asks for the study topics of an uploaded course file.
type TopicExtractionDTO struct {
	CourseFileID uint `json:"coursefile_id" binding:"required"`
	MaxTopics    *int `json:"max_topics" binding:"omitempty,min=1,max=20"`
}
