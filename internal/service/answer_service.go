package service

import (
	"context"
	"fmt"

	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
)

// AnswerService manages the answer options offered for competition questions.
type AnswerService interface {
	CreateAnswer(ctx context.Context, req dto.QuestionAnswerCreateDTO) (*dto.QuestionAnswerResponseDTO, error)
	ListAnswers(ctx context.Context, questionID uint) ([]dto.QuestionAnswerResponseDTO, error)
}

type answerService struct {
	answerRepo repository.QuestionAnswerRepository
}

func NewAnswerService(answerRepo repository.QuestionAnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

func (s *answerService) CreateAnswer(ctx context.Context, req dto.QuestionAnswerCreateDTO) (*dto.QuestionAnswerResponseDTO, error) {
	answer := model.QuestionAnswer{QuestionID: req.QuestionID, AnswerText: req.AnswerText, IsCorrect: req.IsCorrect}
	if err := s.answerRepo.Create(ctx, &answer); err != nil {
		storeFailure(err).Uint("questionID", req.QuestionID).Msg("Failed to create answer option")
		return nil, fmt.Errorf("database error creating answer: %w", err)
	}
	return toResponse[dto.QuestionAnswerResponseDTO](&answer)
}

func (s *answerService) ListAnswers(ctx context.Context, questionID uint) ([]dto.QuestionAnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindByQuestionID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("answers of question %d: %w", questionID, err)
	}
	return toResponses[dto.QuestionAnswerResponseDTO](answers)
}
