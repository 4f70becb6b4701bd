package model

import (
	"time"

	"github.com/google/uuid"
)

type ExtractedTopic struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CourseFileID uint        `json:"coursefile_id" gorm:"column:coursefile_id;not null;index"`
	CourseFile   *CourseFile `json:"-" gorm:"foreignKey:CourseFileID"`
	CourseID     *uuid.UUID  `json:"course_id,omitempty" gorm:"type:uuid;index"`
	Course       *Course     `json:"-" gorm:"foreignKey:CourseID"`
	Name         string      `json:"name" gorm:"type:text;not null"`
	CreatedAt    time.Time   `json:"created_at"`
}
