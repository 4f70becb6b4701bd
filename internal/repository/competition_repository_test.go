package repository

import (
	"context"
	"testing"

	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetitionCreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCompetitionRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)

	competition := &model.Competition{
		Title:           "Organic chemistry",
		Subject:         "Chemistry",
		QuestionCount:   10,
		TimePerQuestion: 30,
		MaxParticipants: 5,
		Difficulty:      "hard",
		Duration:        20,
		CreatedBy:       owner.UserID,
		Status:          model.CompetitionStatusWaiting,
	}
	require.NoError(t, repo.Create(ctx, competition))
	require.NotZero(t, competition.ID)

	found, err := repo.FindByID(ctx, competition.ID)
	require.NoError(t, err)
	assert.Equal(t, "Organic chemistry", found.Title)
	assert.Equal(t, model.CompetitionStatusWaiting, found.Status)
	assert.Equal(t, 5, found.MaxParticipants)
	assert.Nil(t, found.StartedAt)

	_, err = repo.FindByID(ctx, competition.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateParticipantAllowsDuplicates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCompetitionRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	competition := testutil.SeedCompetition(t, db, owner)
	player := testutil.SeedProfile(t, db)

	first := &model.CompetitionParticipant{CompetitionID: competition.ID, UserID: player.UserID, IsInvited: true}
	second := &model.CompetitionParticipant{CompetitionID: competition.ID, UserID: player.UserID, IsInvited: true}
	require.NoError(t, repo.CreateParticipant(ctx, first))
	require.NoError(t, repo.CreateParticipant(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.CompetitionParticipant{}).
		Where("competition_id = ? AND user_id = ?", competition.ID, player.UserID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestMarkJoinedOnlyFlipsHasJoined(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCompetitionRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	competition := testutil.SeedCompetition(t, db, owner)

	participant := &model.CompetitionParticipant{CompetitionID: competition.ID, UserID: owner.UserID, IsInvited: true}
	require.NoError(t, repo.CreateParticipant(ctx, participant))

	require.NoError(t, repo.MarkJoined(ctx, participant.ID))

	var stored model.CompetitionParticipant
	require.NoError(t, db.First(&stored, participant.ID).Error)
	assert.True(t, stored.HasJoined)
	assert.True(t, stored.IsInvited)
	assert.Nil(t, stored.JoinedAt)
	assert.Zero(t, stored.Score)
	assert.False(t, stored.Completed)

	assert.ErrorIs(t, repo.MarkJoined(ctx, participant.ID+100), ErrNotFound)
}

func TestCreateAnswerKeepsReportedCorrectness(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCompetitionRepository(db)
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	competition := testutil.SeedCompetition(t, db, owner)
	question := testutil.SeedQuestion(t, db, competition)

	participant := &model.CompetitionParticipant{CompetitionID: competition.ID, UserID: owner.UserID}
	require.NoError(t, repo.CreateParticipant(ctx, participant))

	option := &model.QuestionAnswer{QuestionID: question.ID, AnswerText: "ATP", IsCorrect: false}
	require.NoError(t, NewQuestionAnswerRepository(db).Create(ctx, option))

	answer := &model.ParticipantAnswer{
		ParticipantID: participant.ID,
		QuestionID:    question.ID,
		AnswerID:      &option.ID,
		IsCorrect:     true,
	}
	require.NoError(t, repo.CreateAnswer(ctx, answer))

	var stored model.ParticipantAnswer
	require.NoError(t, db.First(&stored, answer.ID).Error)
	assert.True(t, stored.IsCorrect)
	require.NotNil(t, stored.AnswerID)
	assert.Equal(t, option.ID, *stored.AnswerID)
}
