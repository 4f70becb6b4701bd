package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
)

type SharedNoteService interface {
	CreateNote(ctx context.Context, req dto.SharedNoteCreateDTO) (*dto.SharedNoteResponseDTO, error)
	// GetNote returns nil without an error when the note does not exist.
	GetNote(ctx context.Context, id uuid.UUID) (*dto.SharedNoteResponseDTO, error)
	ListPublicNotes(ctx context.Context) ([]dto.SharedNoteResponseDTO, error)
	AddComment(ctx context.Context, req dto.SharedNoteCommentCreateDTO) (*dto.SharedNoteCommentResponseDTO, error)
	ListComments(ctx context.Context, noteID uuid.UUID) ([]dto.SharedNoteCommentResponseDTO, error)
}

type sharedNoteService struct {
	noteRepo repository.SharedNoteRepository
}

func NewSharedNoteService(noteRepo repository.SharedNoteRepository) SharedNoteService {
	return &sharedNoteService{noteRepo: noteRepo}
}

func (s *sharedNoteService) CreateNote(ctx context.Context, req dto.SharedNoteCreateDTO) (*dto.SharedNoteResponseDTO, error) {
	note := model.SharedNote{
		Title:         req.Title,
		Description:   req.Description,
		Subject:       req.Subject,
		URL:           req.URL,
		FileName:      req.FileName,
		FileType:      req.FileType,
		FileSize:      req.FileSize,
		PageCount:     req.PageCount,
		FileIsPrivate: valueOr(req.FileIsPrivate, false),
		AllowComments: valueOr(req.AllowComments, true),
		IsAnonymous:   valueOr(req.IsAnonymous, false),
		UploadedBy:    req.UploadedBy,
		RealAuthor:    req.RealAuthor,
		IsRealAuthor:  valueOr(req.IsRealAuthor, false),
		FilePath:      req.FilePath,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		storeFailure(err).Str("filePath", req.FilePath).Msg("Failed to create shared note")
		return nil, fmt.Errorf("database error creating shared note: %w", err)
	}
	return toResponse[dto.SharedNoteResponseDTO](&note)
}

func (s *sharedNoteService) GetNote(ctx context.Context, id uuid.UUID) (*dto.SharedNoteResponseDTO, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("shared note %s: %w", id, err)
	}
	return toResponse[dto.SharedNoteResponseDTO](note)
}

func (s *sharedNoteService) ListPublicNotes(ctx context.Context) ([]dto.SharedNoteResponseDTO, error) {
	notes, err := s.noteRepo.FindPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public notes: %w", err)
	}
	return toResponses[dto.SharedNoteResponseDTO](notes)
}

func (s *sharedNoteService) AddComment(ctx context.Context, req dto.SharedNoteCommentCreateDTO) (*dto.SharedNoteCommentResponseDTO, error) {
	comment := model.SharedNoteComment{NoteID: req.NoteID, UserID: req.UserID, Content: req.Content}
	if err := s.noteRepo.CreateComment(ctx, &comment); err != nil {
		storeFailure(err).Str("noteID", req.NoteID.String()).Msg("Failed to add comment")
		return nil, fmt.Errorf("database error adding comment: %w", err)
	}
	return toResponse[dto.SharedNoteCommentResponseDTO](&comment)
}

func (s *sharedNoteService) ListComments(ctx context.Context, noteID uuid.UUID) ([]dto.SharedNoteCommentResponseDTO, error) {
	comments, err := s.noteRepo.FindComments(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("comments of note %s: %w", noteID, err)
	}
	return toResponses[dto.SharedNoteCommentResponseDTO](comments)
}
