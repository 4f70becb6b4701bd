package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePreferencesDefaultsToTrue(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewNotificationService(repository.NewNotificationPreferenceRepository(db))
	user := testutil.SeedProfile(t, db)
	ctx := context.Background()

	saved, err := svc.SavePreferences(ctx, dto.NotificationPreferenceDTO{UserID: user.UserID, PushNotifications: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, saved.EmailNotifications)
	assert.False(t, saved.PushNotifications)
	assert.True(t, saved.CourseUpdates)
	assert.True(t, saved.AssignmentReminders)
	assert.True(t, saved.DiscussionActivity)

	found, err := svc.GetPreferences(ctx, user.UserID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.PushNotifications)

	missing, err := svc.GetPreferences(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
