package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedBy   uuid.UUID `json:"createdby" gorm:"column:createdby;type:uuid;not null;index"`
	Creator     *Profile  `json:"-" gorm:"foreignKey:CreatedBy;references:UserID"`
	Title       string    `json:"title" gorm:"not null"`
	Code        string    `json:"code" gorm:"not null;uniqueIndex"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Professor   *string   `json:"professor,omitempty"`
	Color       string    `json:"color"` // hex, "#00DF82" unless the caller picks one
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string { return "course" }

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CourseFile struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"type:text;not null"`
	Type      string     `json:"type" gorm:"type:text;not null"`
	Size      *string    `json:"size,omitempty" gorm:"type:text"`
	IsPrivate bool       `json:"is_private" gorm:"not null"`
	URL       string     `json:"url" gorm:"type:text"`
	CourseID  *uuid.UUID `json:"course_id,omitempty" gorm:"type:uuid;index"`
	Course    *Course    `json:"-" gorm:"foreignKey:CourseID"`
	Path      string     `json:"path" gorm:"type:text;uniqueIndex"` // storage object key
	CreatedAt time.Time  `json:"created_at"`
}

func (CourseFile) TableName() string { return "coursefiles" }
