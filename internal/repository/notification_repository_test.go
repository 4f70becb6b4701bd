package repository

import (
	"context"
	"testing"

	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationUpsertKeepsOneRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewNotificationPreferenceRepository(db)
	ctx := context.Background()
	user := testutil.SeedProfile(t, db)

	newPref := func() *model.NotificationPreference {
		return &model.NotificationPreference{
			UserID:              user.UserID,
			EmailNotifications:  true,
			PushNotifications:   false,
			CourseUpdates:       true,
			AssignmentReminders: true,
			DiscussionActivity:  false,
		}
	}

	first := newPref()
	require.NoError(t, repo.Upsert(ctx, first))
	second := newPref()
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.NotificationPreference{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := repo.FindByUserID(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, stored.UpdatedAt.Before(first.UpdatedAt))
	assert.True(t, stored.UpdatedAt.Equal(second.UpdatedAt))
	assert.False(t, stored.PushNotifications)
	assert.False(t, stored.DiscussionActivity)
}

func TestNotificationUpsertOverwritesEveryToggle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewNotificationPreferenceRepository(db)
	ctx := context.Background()
	user := testutil.SeedProfile(t, db)

	require.NoError(t, repo.Upsert(ctx, &model.NotificationPreference{
		UserID:              user.UserID,
		EmailNotifications:  true,
		PushNotifications:   true,
		CourseUpdates:       true,
		AssignmentReminders: true,
		DiscussionActivity:  true,
	}))
	require.NoError(t, repo.Upsert(ctx, &model.NotificationPreference{UserID: user.UserID}))

	stored, err := repo.FindByUserID(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, stored.EmailNotifications)
	assert.False(t, stored.PushNotifications)
	assert.False(t, stored.CourseUpdates)
	assert.False(t, stored.AssignmentReminders)
	assert.False(t, stored.DiscussionActivity)
}

func TestMergePreferences(t *testing.T) {
	dst := &model.NotificationPreference{EmailNotifications: true, CourseUpdates: true}
	src := &model.NotificationPreference{PushNotifications: true, DiscussionActivity: true}

	mergePreferences(dst, src)

	assert.Equal(t, model.NotificationPreference{PushNotifications: true, DiscussionActivity: true}, *dst)
}
