package repository

import (
	"context"
	"testing"

	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicCreateManyAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	course := testutil.SeedCourse(t, db, owner)
	file := testutil.SeedCourseFile(t, db, owner, course)

	topics := []model.ExtractedTopic{
		{CourseFileID: file.ID, CourseID: &course.ID, Name: "Cell membranes"},
		{CourseFileID: file.ID, CourseID: &course.ID, Name: "Protein synthesis"},
	}
	require.NoError(t, repo.CreateMany(ctx, topics))
	assert.NotZero(t, topics[0].ID)
	assert.NotZero(t, topics[1].ID)

	listed, err := repo.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Cell membranes", listed[0].Name)
	assert.Equal(t, "Protein synthesis", listed[1].Name)
}

func TestTopicCreateManyRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	course := testutil.SeedCourse(t, db, owner)
	file := testutil.SeedCourseFile(t, db, owner, course)

	topics := []model.ExtractedTopic{
		{ID: 77, CourseFileID: file.ID, CourseID: &course.ID, Name: "Enzymes"},
		{ID: 77, CourseFileID: file.ID, CourseID: &course.ID, Name: "Enzymes again"},
	}
	require.Error(t, repo.CreateMany(ctx, topics))

	listed, err := repo.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
