package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type SharedNoteRepository interface {
	Create(ctx context.Context, note *model.SharedNote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SharedNote, error)
	FindPublic(ctx context.Context) ([]model.SharedNote, error)
	CreateComment(ctx context.Context, comment *model.SharedNoteComment) error
	FindComments(ctx context.Context, noteID uuid.UUID) ([]model.SharedNoteComment, error)
}

type sharedNoteRepository struct {
	notes    *Store[model.SharedNote]
	comments *Store[model.SharedNoteComment]
}

func NewSharedNoteRepository(db *gorm.DB) SharedNoteRepository {
	return &sharedNoteRepository{
		notes:    NewStore[model.SharedNote](db),
		comments: NewStore[model.SharedNoteComment](db),
	}
}

func (r *sharedNoteRepository) Create(ctx context.Context, note *model.SharedNote) error {
	return r.notes.Create(ctx, note)
}

func (r *sharedNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SharedNote, error) {
	return r.notes.FindOne(ctx, Where("id", id))
}

func (r *sharedNoteRepository) FindPublic(ctx context.Context) ([]model.SharedNote, error) {
	return r.notes.FindAll(ctx, Where("file_is_private", false))
}

func (r *sharedNoteRepository) CreateComment(ctx context.Context, comment *model.SharedNoteComment) error {
	return r.comments.Create(ctx, comment)
}

func (r *sharedNoteRepository) FindComments(ctx context.Context, noteID uuid.UUID) ([]model.SharedNoteComment, error) {
	return r.comments.FindAll(ctx, Where("note_id", noteID))
}
