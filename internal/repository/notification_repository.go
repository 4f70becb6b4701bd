package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type NotificationPreferenceRepository interface {
	// Upsert inserts pref when the user has no preferences yet and otherwise overwrites the
	// stored row with pref. pref is refreshed with the stored values.
	Upsert(ctx context.Context, pref *model.NotificationPreference) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.NotificationPreference, error)
}

type notificationPreferenceRepository struct {
	db    *gorm.DB
	prefs *Store[model.NotificationPreference]
}

func NewNotificationPreferenceRepository(db *gorm.DB) NotificationPreferenceRepository {
	return &notificationPreferenceRepository{db: db, prefs: NewStore[model.NotificationPreference](db)}
}

func (r *notificationPreferenceRepository) Upsert(ctx context.Context, pref *model.NotificationPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := r.prefs.WithTx(tx)
		existing, err := store.FindOne(ctx, Where("user_id", pref.UserID))
		if errors.Is(err, ErrNotFound) {
			return store.Create(ctx, pref)
		}
		if err != nil {
			return err
		}

		mergePreferences(existing, pref)
		if err := tx.Save(existing).Error; err != nil {
			return fmt.Errorf("update notification preferences of %s: %w", pref.UserID, err)
		}
		*pref = *existing
		return nil
	})
}

func (r *notificationPreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.NotificationPreference, error) {
	return r.prefs.FindOne(ctx, Where("user_id", userID))
}

// mergePreferences copies every caller-writable field of src onto dst.
func mergePreferences(dst, src *model.NotificationPreference) {
	dst.EmailNotifications = src.EmailNotifications
	dst.PushNotifications = src.PushNotifications
	dst.CourseUpdates = src.CourseUpdates
	dst.AssignmentReminders = src.AssignmentReminders
	dst.DiscussionActivity = src.DiscussionActivity
}
