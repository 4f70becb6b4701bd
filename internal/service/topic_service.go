package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultMaxTopics = 8

type TopicService interface {
	CreateTopic(ctx context.Context, req dto.ExtractedTopicCreateDTO) (*dto.ExtractedTopicResponseDTO, error)
	ListCourseTopics(ctx context.Context, courseID uuid.UUID) ([]dto.ExtractedTopicResponseDTO, error)
	// ExtractTopics asks the extractor for the topics of a course file and stores one row per
	// topic. Fails with repository.ErrNotFound for an unknown file and ErrExtractionUnavailable
	// when no extractor is configured.
	ExtractTopics(ctx context.Context, req dto.TopicExtractionDTO) ([]dto.ExtractedTopicResponseDTO, error)
}

type topicService struct {
	topicRepo      repository.TopicRepository
	courseRepo     repository.CourseRepository
	courseFileRepo repository.CourseFileRepository
	extractor      TopicExtractor
}

func NewTopicService(
	topicRepo repository.TopicRepository,
	courseRepo repository.CourseRepository,
	courseFileRepo repository.CourseFileRepository,
	extractor TopicExtractor,
) TopicService {
	return &topicService{
		topicRepo:      topicRepo,
		courseRepo:     courseRepo,
		courseFileRepo: courseFileRepo,
		extractor:      extractor,
	}
}

func (s *topicService) CreateTopic(ctx context.Context, req dto.ExtractedTopicCreateDTO) (*dto.ExtractedTopicResponseDTO, error) {
	topic := model.ExtractedTopic{CourseFileID: req.CourseFileID, CourseID: req.CourseID, Name: req.Name}
	if err := s.topicRepo.Create(ctx, &topic); err != nil {
		storeFailure(err).Uint("courseFileID", req.CourseFileID).Msg("Failed to create topic")
		return nil, fmt.Errorf("database error creating topic: %w", err)
	}
	return toResponse[dto.ExtractedTopicResponseDTO](&topic)
}

func (s *topicService) ListCourseTopics(ctx context.Context, courseID uuid.UUID) ([]dto.ExtractedTopicResponseDTO, error) {
	topics, err := s.topicRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("topics of course %s: %w", courseID, err)
	}
	return toResponses[dto.ExtractedTopicResponseDTO](topics)
}

func (s *topicService) ExtractTopics(ctx context.Context, req dto.TopicExtractionDTO) ([]dto.ExtractedTopicResponseDTO, error) {
	file, err := s.courseFileRepo.FindByID(ctx, req.CourseFileID)
	if err != nil {
		return nil, fmt.Errorf("course file %d: %w", req.CourseFileID, err)
	}

	doc := Document{Name: file.Name, Type: file.Type, URL: file.URL}
	if file.CourseID != nil {
		course, err := s.courseRepo.FindByID(ctx, *file.CourseID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("course of file %d: %w", file.ID, err)
		}
		if course != nil {
			doc.CourseTitle = course.Title
		}
	}

	names, err := s.extractor.ExtractTopics(ctx, doc, valueOr(req.MaxTopics, defaultMaxTopics))
	if err != nil {
		return nil, err
	}

	topics := make([]model.ExtractedTopic, 0, len(names))
	for _, name := range names {
		topics = append(topics, model.ExtractedTopic{CourseFileID: file.ID, CourseID: file.CourseID, Name: name})
	}
	if len(topics) > 0 {
		if err := s.topicRepo.CreateMany(ctx, topics); err != nil {
			storeFailure(err).Uint("courseFileID", file.ID).Int("topics", len(topics)).Msg("Failed to store extracted topics")
			return nil, fmt.Errorf("database error storing extracted topics: %w", err)
		}
	}

	log.Info().Uint("courseFileID", file.ID).Int("topics", len(topics)).Msg("Topics extracted")
	return toResponses[dto.ExtractedTopicResponseDTO](topics)
}
