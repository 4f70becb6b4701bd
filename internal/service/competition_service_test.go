package service

import (
	"context"
	"testing"

	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/hivebackit/hivebackit-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestCreateCompetitionDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCompetitionService(repository.NewCompetitionRepository(db))
	owner := testutil.SeedProfile(t, db)

	resp, err := svc.CreateCompetition(context.Background(), dto.CompetitionCreateDTO{
		Title:     "Genetics quiz",
		Subject:   "Biology",
		CreatedBy: owner.UserID,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, model.CompetitionStatusWaiting, resp.Status)
	assert.Equal(t, 15, resp.QuestionCount)
	assert.Equal(t, 60, resp.TimePerQuestion)
	assert.Equal(t, 5, resp.MaxParticipants)
	assert.Equal(t, "medium", resp.Difficulty)
	assert.False(t, resp.IsPrivate)
	assert.True(t, resp.AllowMidJoin)
	assert.True(t, resp.ShowLeaderboard)
	assert.Equal(t, 60, resp.Duration)
	assert.Nil(t, resp.StartedAt)

	var participants int64
	require.NoError(t, db.Model(&model.CompetitionParticipant{}).Count(&participants).Error)
	assert.Zero(t, participants)
}

func TestCreateCompetitionKeepsCallerSettings(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCompetitionService(repository.NewCompetitionRepository(db))
	owner := testutil.SeedProfile(t, db)
	hard := "hard"

	resp, err := svc.CreateCompetition(context.Background(), dto.CompetitionCreateDTO{
		Title:           "Finals warmup",
		Subject:         "Physics",
		MaxParticipants: intPtr(5),
		Difficulty:      &hard,
		AllowMidJoin:    boolPtr(false),
		Duration:        intPtr(15),
		CreatedBy:       owner.UserID,
	})
	require.NoError(t, err)

	stored, err := svc.GetCompetition(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.MaxParticipants)
	assert.Equal(t, "hard", stored.Difficulty)
	assert.False(t, stored.AllowMidJoin)
	assert.Equal(t, 15, stored.Duration)
	assert.Equal(t, model.CompetitionStatusWaiting, stored.Status)
}

func TestGetCompetitionMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCompetitionService(repository.NewCompetitionRepository(db))

	_, err := svc.GetCompetition(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJoinAndSubmit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCompetitionService(repository.NewCompetitionRepository(db))
	ctx := context.Background()
	owner := testutil.SeedProfile(t, db)
	competition := testutil.SeedCompetition(t, db, owner)
	question := testutil.SeedQuestion(t, db, competition)

	participant, err := svc.JoinCompetition(ctx, dto.ParticipantCreateDTO{CompetitionID: competition.ID, UserID: owner.UserID})
	require.NoError(t, err)
	assert.True(t, participant.IsInvited)
	assert.False(t, participant.HasJoined)
	assert.Zero(t, participant.Score)

	again, err := svc.JoinCompetition(ctx, dto.ParticipantCreateDTO{CompetitionID: competition.ID, UserID: owner.UserID, IsInvited: boolPtr(false)})
	require.NoError(t, err)
	assert.NotEqual(t, participant.ID, again.ID)
	assert.False(t, again.IsInvited)

	omitted, err := svc.SubmitAnswer(ctx, dto.ParticipantAnswerCreateDTO{ParticipantID: participant.ID, QuestionID: question.ID})
	require.NoError(t, err)
	assert.False(t, omitted.IsCorrect)

	reported, err := svc.SubmitAnswer(ctx, dto.ParticipantAnswerCreateDTO{
		ParticipantID: participant.ID,
		QuestionID:    question.ID,
		IsCorrect:     boolPtr(true),
		TimeTaken:     intPtr(12),
	})
	require.NoError(t, err)
	assert.True(t, reported.IsCorrect)
	require.NotNil(t, reported.TimeTaken)
	assert.Equal(t, 12, *reported.TimeTaken)

	var stored model.CompetitionParticipant
	require.NoError(t, db.First(&stored, participant.ID).Error)
	assert.Zero(t, stored.Score)
	assert.False(t, stored.Completed)
}
