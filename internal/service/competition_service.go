package service

import (
	"context"
	"fmt"

	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
)

const (
	defaultQuestionCount   = 15
	defaultTimePerQuestion = 60
	defaultMaxParticipants = 5
	defaultDifficulty      = "medium"
	defaultDuration        = 60
)

// CompetitionService stores the competition flow. Each method is one independent insert or
// lookup: there is no capacity check, no status transition and no scoring.
type CompetitionService interface {
	CreateCompetition(ctx context.Context, req dto.CompetitionCreateDTO) (*dto.CompetitionResponseDTO, error)
	GetCompetition(ctx context.Context, id uint) (*dto.CompetitionResponseDTO, error)
	AddQuestion(ctx context.Context, req dto.CompetitionQuestionCreateDTO) (*dto.CompetitionQuestionResponseDTO, error)
	JoinCompetition(ctx context.Context, req dto.ParticipantCreateDTO) (*dto.ParticipantResponseDTO, error)
	SubmitAnswer(ctx context.Context, req dto.ParticipantAnswerCreateDTO) (*dto.ParticipantAnswerResponseDTO, error)
}

type competitionService struct {
	competitionRepo repository.CompetitionRepository
}

func NewCompetitionService(competitionRepo repository.CompetitionRepository) CompetitionService {
	return &competitionService{competitionRepo: competitionRepo}
}

func (s *competitionService) CreateCompetition(ctx context.Context, req dto.CompetitionCreateDTO) (*dto.CompetitionResponseDTO, error) {
	competition := model.Competition{
		Title:           req.Title,
		Subject:         req.Subject,
		QuestionCount:   valueOr(req.QuestionCount, defaultQuestionCount),
		TimePerQuestion: valueOr(req.TimePerQuestion, defaultTimePerQuestion),
		MaxParticipants: valueOr(req.MaxParticipants, defaultMaxParticipants),
		Difficulty:      valueOr(req.Difficulty, defaultDifficulty),
		IsPrivate:       valueOr(req.IsPrivate, false),
		AllowMidJoin:    valueOr(req.AllowMidJoin, true),
		ShowLeaderboard: valueOr(req.ShowLeaderboard, true),
		Duration:        valueOr(req.Duration, defaultDuration),
		CreatedBy:       req.CreatedBy,
		Status:          model.CompetitionStatusWaiting,
	}

	if err := s.competitionRepo.Create(ctx, &competition); err != nil {
		storeFailure(err).Str("createdBy", req.CreatedBy.String()).Msg("Failed to create competition")
		return nil, fmt.Errorf("database error creating competition: %w", err)
	}
	return toResponse[dto.CompetitionResponseDTO](&competition)
}

func (s *competitionService) GetCompetition(ctx context.Context, id uint) (*dto.CompetitionResponseDTO, error) {
	competition, err := s.competitionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("competition %d: %w", id, err)
	}
	return toResponse[dto.CompetitionResponseDTO](competition)
}

func (s *competitionService) AddQuestion(ctx context.Context, req dto.CompetitionQuestionCreateDTO) (*dto.CompetitionQuestionResponseDTO, error) {
	question := model.CompetitionQuestion{
		CompetitionID: req.CompetitionID,
		QuestionText:  req.QuestionText,
		TopicID:       req.TopicID,
	}
	if err := s.competitionRepo.CreateQuestion(ctx, &question); err != nil {
		storeFailure(err).Uint("competitionID", req.CompetitionID).Msg("Failed to add competition question")
		return nil, fmt.Errorf("database error adding question: %w", err)
	}
	return toResponse[dto.CompetitionQuestionResponseDTO](&question)
}

func (s *competitionService) JoinCompetition(ctx context.Context, req dto.ParticipantCreateDTO) (*dto.ParticipantResponseDTO, error) {
	participant := model.CompetitionParticipant{
		CompetitionID: req.CompetitionID,
		UserID:        req.UserID,
		IsInvited:     valueOr(req.IsInvited, true),
	}
	if err := s.competitionRepo.CreateParticipant(ctx, &participant); err != nil {
		storeFailure(err).
			Uint("competitionID", req.CompetitionID).
			Str("userID", req.UserID.String()).
			Msg("Failed to add competition participant")
		return nil, fmt.Errorf("database error joining competition: %w", err)
	}
	return toResponse[dto.ParticipantResponseDTO](&participant)
}

func (s *competitionService) SubmitAnswer(ctx context.Context, req dto.ParticipantAnswerCreateDTO) (*dto.ParticipantAnswerResponseDTO, error) {
	answer := model.ParticipantAnswer{
		ParticipantID: req.ParticipantID,
		QuestionID:    req.QuestionID,
		AnswerID:      req.AnswerID,
		IsCorrect:     valueOr(req.IsCorrect, false),
		TimeTaken:     req.TimeTaken,
	}
	if err := s.competitionRepo.CreateAnswer(ctx, &answer); err != nil {
		storeFailure(err).
			Uint("participantID", req.ParticipantID).
			Uint("questionID", req.QuestionID).
			Msg("Failed to store participant answer")
		return nil, fmt.Errorf("database error submitting answer: %w", err)
	}
	return toResponse[dto.ParticipantAnswerResponseDTO](&answer)
}
