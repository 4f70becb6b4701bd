package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
)

const (
	defaultCourseColor = "#00DF82"
	defaultCourseIcon  = "school"
)

type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error)
	GetCourseByCode(ctx context.Context, code string) (*dto.CourseResponseDTO, error)
	CreateCourseFile(ctx context.Context, req dto.CourseFileCreateDTO) (*dto.CourseFileResponseDTO, error)
	ListCourseFiles(ctx context.Context, courseID uuid.UUID) ([]dto.CourseFileResponseDTO, error)
}

type courseService struct {
	courseRepo     repository.CourseRepository
	courseFileRepo repository.CourseFileRepository
}

func NewCourseService(courseRepo repository.CourseRepository, courseFileRepo repository.CourseFileRepository) CourseService {
	return &courseService{courseRepo: courseRepo, courseFileRepo: courseFileRepo}
}

func (s *courseService) CreateCourse(ctx context.Context, req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error) {
	course := model.Course{
		CreatedBy:   req.CreatedBy,
		Title:       req.Title,
		Code:        req.Code,
		Description: req.Description,
		Professor:   req.Professor,
		Color:       valueOr(req.Color, defaultCourseColor),
		Icon:        valueOr(req.Icon, defaultCourseIcon),
	}
	if err := s.courseRepo.Create(ctx, &course); err != nil {
		storeFailure(err).Str("code", req.Code).Msg("Failed to create course")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}
	return toResponse[dto.CourseResponseDTO](&course)
}

func (s *courseService) GetCourseByCode(ctx context.Context, code string) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", code, err)
	}
	return toResponse[dto.CourseResponseDTO](course)
}

func (s *courseService) CreateCourseFile(ctx context.Context, req dto.CourseFileCreateDTO) (*dto.CourseFileResponseDTO, error) {
	file := model.CourseFile{
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		Size:      req.Size,
		IsPrivate: valueOr(req.IsPrivate, true),
		URL:       valueOr(req.URL, ""),
		CourseID:  req.CourseID,
		Path:      req.Path,
	}
	if err := s.courseFileRepo.Create(ctx, &file); err != nil {
		storeFailure(err).Str("path", req.Path).Msg("Failed to record course file")
		return nil, fmt.Errorf("database error creating course file: %w", err)
	}
	return toResponse[dto.CourseFileResponseDTO](&file)
}

func (s *courseService) ListCourseFiles(ctx context.Context, courseID uuid.UUID) ([]dto.CourseFileResponseDTO, error) {
	files, err := s.courseFileRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("files of course %s: %w", courseID, err)
	}
	return toResponses[dto.CourseFileResponseDTO](files)
}
