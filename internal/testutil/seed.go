package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func SeedProfile(t *testing.T, db *gorm.DB) *model.Profile {
	t.Helper()

	profile := &model.Profile{UserID: uuid.New(), IsPushNotification: true}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func SeedCompetition(t *testing.T, db *gorm.DB, owner *model.Profile) *model.Competition {
	t.Helper()

	competition := &model.Competition{
		Title:           "Cell biology sprint",
		Subject:         "Biology",
		QuestionCount:   15,
		TimePerQuestion: 60,
		MaxParticipants: 5,
		Difficulty:      "medium",
		AllowMidJoin:    true,
		ShowLeaderboard: true,
		Duration:        60,
		CreatedBy:       owner.UserID,
		Status:          model.CompetitionStatusWaiting,
	}
	require.NoError(t, db.Create(competition).Error)
	return competition
}

func SeedQuestion(t *testing.T, db *gorm.DB, competition *model.Competition) *model.CompetitionQuestion {
	t.Helper()

	question := &model.CompetitionQuestion{CompetitionID: competition.ID, QuestionText: "What does the mitochondria produce?"}
	require.NoError(t, db.Create(question).Error)
	return question
}

func SeedCourseFile(t *testing.T, db *gorm.DB, owner *model.Profile, course *model.Course) *model.CourseFile {
	t.Helper()

	file := &model.CourseFile{
		UserID:    owner.UserID,
		Name:      "lecture-01.pdf",
		Type:      "application/pdf",
		IsPrivate: true,
		Path:      "courses/" + uuid.NewString() + "/lecture-01.pdf",
	}
	if course != nil {
		file.CourseID = &course.ID
	}
	require.NoError(t, db.Create(file).Error)
	return file
}

func SeedCourse(t *testing.T, db *gorm.DB, owner *model.Profile) *model.Course {
	t.Helper()

	course := &model.Course{
		CreatedBy: owner.UserID,
		Title:     "Molecular Biology",
		Code:      "BIO-" + uuid.NewString()[:8],
		Color:     "#00DF82",
		Icon:      "school",
	}
	require.NoError(t, db.Create(course).Error)
	return course
}
