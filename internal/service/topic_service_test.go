package service

import (
	"context"
	"testing"

	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	topics   []string
	err      error
	gotDoc   Document
	gotLimit int
}

func (s *stubExtractor) ExtractTopics(_ context.Context, doc Document, maxTopics int) ([]string, error) {
	s.gotDoc = doc
	s.gotLimit = maxTopics
	if s.err != nil {
		return nil, s.err
	}
	if len(s.topics) > maxTopics {
		return s.topics[:maxTopics], nil
	}
	return s.topics, nil
}

func TestExtractTopicsStoresRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedProfile(t, db)
	course := testutil.SeedCourse(t, db, owner)
	file := testutil.SeedCourseFile(t, db, owner, course)
	extractor := &stubExtractor{topics: []string{"Cell membranes", "Osmosis", "Active transport"}}
	svc := NewTopicService(
		repository.NewTopicRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCourseFileRepository(db),
		extractor,
	)
	ctx := context.Background()

	topics, err := svc.ExtractTopics(ctx, dto.TopicExtractionDTO{CourseFileID: file.ID, MaxTopics: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Cell membranes", topics[0].Name)
	assert.Equal(t, file.ID, topics[0].CourseFileID)
	assert.Equal(t, course.ID, *topics[0].CourseID)
	assert.Equal(t, 2, extractor.gotLimit)
	assert.Equal(t, course.Title, extractor.gotDoc.CourseTitle)
	assert.Equal(t, file.Name, extractor.gotDoc.Name)

	listed, err := svc.ListCourseTopics(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestExtractTopicsDefaultLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedProfile(t, db)
	file := testutil.SeedCourseFile(t, db, owner, nil)
	extractor := &stubExtractor{}
	svc := NewTopicService(repository.NewTopicRepository(db), repository.NewCourseRepository(db), repository.NewCourseFileRepository(db), extractor)

	topics, err := svc.ExtractTopics(context.Background(), dto.TopicExtractionDTO{CourseFileID: file.ID})
	require.NoError(t, err)
	assert.Empty(t, topics)
	assert.Equal(t, defaultMaxTopics, extractor.gotLimit)
	assert.Empty(t, extractor.gotDoc.CourseTitle)
}

func TestExtractTopicsErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedProfile(t, db)
	file := testutil.SeedCourseFile(t, db, owner, nil)
	extractor := &stubExtractor{err: ErrExtractionUnavailable}
	svc := NewTopicService(repository.NewTopicRepository(db), repository.NewCourseRepository(db), repository.NewCourseFileRepository(db), extractor)
	ctx := context.Background()

	_, err := svc.ExtractTopics(ctx, dto.TopicExtractionDTO{CourseFileID: file.ID + 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.ExtractTopics(ctx, dto.TopicExtractionDTO{CourseFileID: file.ID})
	assert.ErrorIs(t, err, ErrExtractionUnavailable)
}
