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

type UserService interface {
	CreateProfile(ctx context.Context, req dto.ProfileCreateDTO) (*dto.ProfileResponseDTO, error)
	// GetProfile returns nil without an error when the user has no profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponseDTO, error)
	CreateUniversity(ctx context.Context, req dto.UniversityCreateDTO) (*dto.UniversityResponseDTO, error)
	ListUniversities(ctx context.Context) ([]dto.UniversityResponseDTO, error)
}

type userService struct {
	profileRepo    repository.ProfileRepository
	universityRepo repository.UniversityRepository
}

func NewUserService(profileRepo repository.ProfileRepository, universityRepo repository.UniversityRepository) UserService {
	return &userService{profileRepo: profileRepo, universityRepo: universityRepo}
}

func (s *userService) CreateProfile(ctx context.Context, req dto.ProfileCreateDTO) (*dto.ProfileResponseDTO, error) {
	profile := model.Profile{
		UserID:             req.UserID,
		FullName:           req.FullName,
		Username:           req.Username,
		Email:              req.Email,
		UniversityID:       req.UniversityID,
		AvatarURL:          req.AvatarURL,
		Major:              req.Major,
		Year:               req.Year,
		IsPushNotification: valueOr(req.IsPushNotification, true),
	}
	if err := s.profileRepo.Create(ctx, &profile); err != nil {
		storeFailure(err).Str("userID", req.UserID.String()).Msg("Failed to create profile")
		return nil, fmt.Errorf("database error creating profile: %w", err)
	}
	return toResponse[dto.ProfileResponseDTO](&profile)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponseDTO, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", userID, err)
	}
	return toResponse[dto.ProfileResponseDTO](profile)
}

func (s *userService) CreateUniversity(ctx context.Context, req dto.UniversityCreateDTO) (*dto.UniversityResponseDTO, error) {
	university := model.University{ID: req.ID, Name: req.Name, LogoURL: req.LogoURL}
	if err := s.universityRepo.Create(ctx, &university); err != nil {
		storeFailure(err).Str("universityID", req.ID).Msg("Failed to create university")
		return nil, fmt.Errorf("database error creating university: %w", err)
	}
	return toResponse[dto.UniversityResponseDTO](&university)
}

func (s *userService) ListUniversities(ctx context.Context) ([]dto.UniversityResponseDTO, error) {
	universities, err := s.universityRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return toResponses[dto.UniversityResponseDTO](universities)
}
