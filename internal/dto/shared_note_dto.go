package dto

import (
	"time"

	"github.com/google/uuid"
)

type SharedNoteCreateDTO struct {
	Title         string     `json:"title" binding:"required"`
	Description   *string    `json:"description"`
	Subject       string     `json:"subject" binding:"required"`
	URL           string     `json:"url" binding:"required"`
	FileName      *string    `json:"file_name"`
	FileType      *string    `json:"file_type"`
	FileSize      *int64     `json:"file_size"`
	PageCount     *int       `json:"page_count"`
	FileIsPrivate *bool      `json:"file_is_private"`
	AllowComments *bool      `json:"allow_comments"`
	IsAnonymous   *bool      `json:"is_anonymous"`
	UploadedBy    *uuid.UUID `json:"uploaded_by"`
	RealAuthor    *string    `json:"real_author"`
	IsRealAuthor  *bool      `json:"is_real_author"`
	FilePath      string     `json:"file_path" binding:"required"`
}

type SharedNoteResponseDTO struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Subject       string     `json:"subject"`
	URL           string     `json:"url"`
	FileName      *string    `json:"file_name"`
	FileType      *string    `json:"file_type"`
	FileSize      *int64     `json:"file_size"`
	PageCount     *int       `json:"page_count"`
	FileIsPrivate bool       `json:"file_is_private"`
	AllowComments bool       `json:"allow_comments"`
	IsAnonymous   bool       `json:"is_anonymous"`
	UploadedBy    *uuid.UUID `json:"uploaded_by"`
	RealAuthor    *string    `json:"real_author"`
	IsRealAuthor  bool       `json:"is_real_author"`
	FilePath      string     `json:"file_path"`
	CreatedAt     time.Time  `json:"created_at"`
}

type SharedNoteCommentCreateDTO struct {
	NoteID  uuid.UUID  `json:"note_id" binding:"required"`
	UserID  *uuid.UUID `json:"user_id"`
	Content string     `json:"content" binding:"required"`
}

type SharedNoteCommentResponseDTO struct {
	ID        uuid.UUID  `json:"id"`
	NoteID    uuid.UUID  `json:"note_id"`
	UserID    *uuid.UUID `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
}
