package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCourseFindByCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)

	course := &model.Course{
		CreatedBy:   owner.UserID,
		Title:       "Linear Algebra",
		Code:        "MATH-221",
		Description: strPtr("Vectors and matrices"),
		Color:       "#00DF82",
		Icon:        "school",
	}
	require.NoError(t, repo.Create(ctx, course))
	assert.NotEqual(t, uuid.Nil, course.ID)

	found, err := repo.FindByCode(ctx, "MATH-221")
	require.NoError(t, err)
	assert.Equal(t, course.ID, found.ID)
	assert.Equal(t, "Vectors and matrices", *found.Description)

	_, err = repo.FindByCode(ctx, "MATH-999")
	assert.ErrorIs(t, err, ErrNotFound)

	duplicate := &model.Course{CreatedBy: owner.UserID, Title: "Again", Code: "MATH-221"}
	assert.Error(t, repo.Create(ctx, duplicate))
}

func TestCourseFilesByCourse(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCourseFileRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	course := testutil.SeedCourse(t, db, owner)
	other := testutil.SeedCourse(t, db, owner)

	file := testutil.SeedCourseFile(t, db, owner, course)
	testutil.SeedCourseFile(t, db, owner, other)

	files, err := repo.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, file.Path, files[0].Path)

	found, err := repo.FindByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, file.Name, found.Name)
}

func TestSharedNotesPublicListing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSharedNoteRepository(db)
	ctx := context.Background()

	public := &model.SharedNote{Title: "Krebs cycle", Subject: "Biology", URL: "https://cdn/notes/a.pdf", FilePath: "notes/a.pdf", AllowComments: true}
	private := &model.SharedNote{Title: "Draft", Subject: "Biology", URL: "https://cdn/notes/b.pdf", FilePath: "notes/b.pdf", FileIsPrivate: true}
	require.NoError(t, repo.Create(ctx, public))
	require.NoError(t, repo.Create(ctx, private))

	notes, err := repo.FindPublic(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, public.ID, notes[0].ID)

	comment := &model.SharedNoteComment{NoteID: public.ID, Content: "Great summary"}
	require.NoError(t, repo.CreateComment(ctx, comment))

	comments, err := repo.FindComments(ctx, public.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Great summary", comments[0].Content)

	none, err := repo.FindComments(ctx, private.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfileAndUniversity(t *testing.T) {
	db := testutil.NewTestDB(t)
	profiles := NewProfileRepository(db)
	universities := NewUniversityRepository(db)
	ctx := context.Background()

	require.NoError(t, universities.Create(ctx, &model.University{ID: "ubc", Name: "University of British Columbia"}))

	profile := &model.Profile{UserID: uuid.New(), Username: strPtr("ada"), UniversityID: strPtr("ubc"), IsPushNotification: true}
	require.NoError(t, profiles.Create(ctx, profile))

	found, err := profiles.FindByUserID(ctx, profile.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ada", *found.Username)
	assert.True(t, found.IsPushNotification)

	all, err := universities.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ubc", all[0].ID)
}
