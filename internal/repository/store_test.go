package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFindOneMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewStore[model.Profile](db)

	profile, err := store.FindOne(context.Background(), Where("user_id", uuid.New()))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, profile)
}

func TestStoreFindAllOrdersByKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewStore[model.University](db)
	ctx := context.Background()

	empty, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, id := range []string{"uoft", "mcgill", "ubc"} {
		require.NoError(t, store.Create(ctx, &model.University{ID: id, Name: id}))
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "mcgill", all[0].ID)
	assert.Equal(t, "ubc", all[1].ID)
	assert.Equal(t, "uoft", all[2].ID)
}

func TestStoreUpdateColumnMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewStore[model.CompetitionParticipant](db)

	err := store.UpdateColumn(context.Background(), Where("id", 4242), "has_joined", true)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConstraintViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantName string
		wantOK   bool
	}{
		{
			name:     "unique",
			err:      fmt.Errorf("insert *model.Course: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_course_code"}),
			wantName: "idx_course_code",
			wantOK:   true,
		},
		{
			name:     "foreign key",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "fk_competitions_creator"},
			wantName: "fk_competitions_creator",
			wantOK:   true,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "42P01"},
		},
		{
			name: "not a postgres error",
			err:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := ConstraintViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
