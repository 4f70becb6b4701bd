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

type NotificationService interface {
	// SavePreferences replaces the user's whole preference set, creating it on first use.
	SavePreferences(ctx context.Context, req dto.NotificationPreferenceDTO) (*dto.NotificationPreferenceResponseDTO, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*dto.NotificationPreferenceResponseDTO, error)
}

type notificationService struct {
	prefRepo repository.NotificationPreferenceRepository
}

func NewNotificationService(prefRepo repository.NotificationPreferenceRepository) NotificationService {
	return &notificationService{prefRepo: prefRepo}
}

func (s *notificationService) SavePreferences(ctx context.Context, req dto.NotificationPreferenceDTO) (*dto.NotificationPreferenceResponseDTO, error) {
	pref := model.NotificationPreference{
		UserID:              req.UserID,
		EmailNotifications:  valueOr(req.EmailNotifications, true),
		PushNotifications:   valueOr(req.PushNotifications, true),
		CourseUpdates:       valueOr(req.CourseUpdates, true),
		AssignmentReminders: valueOr(req.AssignmentReminders, true),
		DiscussionActivity:  valueOr(req.DiscussionActivity, true),
	}
	if err := s.prefRepo.Upsert(ctx, &pref); err != nil {
		storeFailure(err).Str("userID", req.UserID.String()).Msg("Failed to save notification preferences")
		return nil, fmt.Errorf("database error saving notification preferences: %w", err)
	}
	return toResponse[dto.NotificationPreferenceResponseDTO](&pref)
}

func (s *notificationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*dto.NotificationPreferenceResponseDTO, error) {
	pref, err := s.prefRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("notification preferences of %s: %w", userID, err)
	}
	return toResponse[dto.NotificationPreferenceResponseDTO](pref)
}
