package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharedNote struct {
	ID            uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Description   *string    `json:"description,omitempty" gorm:"type:text"`
	Subject       string     `json:"subject" gorm:"type:text;not null"`
	URL           string     `json:"url" gorm:"type:text;not null"`
	FileName      *string    `json:"file_name,omitempty" gorm:"type:text"`
	FileType      *string    `json:"file_type,omitempty" gorm:"type:text"`
	FileSize      *int64     `json:"file_size,omitempty"`
	PageCount     *int       `json:"page_count,omitempty"`
	FileIsPrivate bool       `json:"file_is_private" gorm:"not null;index"`
	AllowComments bool       `json:"allow_comments" gorm:"not null"`
	IsAnonymous   bool       `json:"is_anonymous" gorm:"not null"`
	UploadedBy    *uuid.UUID `json:"uploaded_by,omitempty" gorm:"type:uuid;index"`
	Uploader      *Profile   `json:"-" gorm:"foreignKey:UploadedBy;references:UserID"`
	RealAuthor    *string    `json:"real_author,omitempty" gorm:"type:text"`
	IsRealAuthor  bool       `json:"is_real_author" gorm:"not null"`
	FilePath      string     `json:"file_path" gorm:"type:text;uniqueIndex"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (n *SharedNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type SharedNoteComment struct {
	ID        uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	NoteID    uuid.UUID   `json:"note_id" gorm:"type:uuid;not null;index"`
	Note      *SharedNote `json:"-" gorm:"foreignKey:NoteID"`
	UserID    *uuid.UUID  `json:"user_id,omitempty" gorm:"type:uuid"`
	Content   string      `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time   `json:"created_at"`
}

func (SharedNoteComment) TableName() string { return "shared_notes_comments" }

func (c *SharedNoteComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
