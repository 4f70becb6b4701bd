package dto

import (
	"time"

	"github.com/google/uuid"
)

// CompetitionCreateDTO carries a new competition. Omitted settings fall back to the
// platform defaults (15 questions, 60s per question, 5 participants, "medium", 60 minutes).
type CompetitionCreateDTO struct {
	Title           string    `json:"title" binding:"required"`
	Subject         string    `json:"subject" binding:"required"`
	QuestionCount   *int      `json:"question_count"`
	TimePerQuestion *int      `json:"time_per_question"`
	MaxParticipants *int      `json:"max_participants"`
	Difficulty      *string   `json:"difficulty"`
	IsPrivate       *bool     `json:"is_private"`
	AllowMidJoin    *bool     `json:"allow_mid_join"`
	ShowLeaderboard *bool     `json:"show_leaderboard"`
	Duration        *int      `json:"duration"`
	CreatedBy       uuid.UUID `json:"created_by" binding:"required"`
}

type CompetitionResponseDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Subject         string     `json:"subject"`
	QuestionCount   int        `json:"question_count"`
	TimePerQuestion int        `json:"time_per_question"`
	MaxParticipants int        `json:"max_participants"`
	Difficulty      string     `json:"difficulty"`
	IsPrivate       bool       `json:"is_private"`
	AllowMidJoin    bool       `json:"allow_mid_join"`
	ShowLeaderboard bool       `json:"show_leaderboard"`
	Duration        int        `json:"duration"`
	CreatedBy       uuid.UUID  `json:"created_by"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
}

type CompetitionQuestionCreateDTO struct {
	CompetitionID uint   `json:"competition_id" binding:"required"`
	QuestionText  string `json:"question_text" binding:"required"`
	TopicID       *uint  `json:"topic_id"`
}

type CompetitionQuestionResponseDTO struct {
	ID            uint      `json:"id"`
	CompetitionID uint      `json:"competition_id"`
	QuestionText  string    `json:"question_text"`
	TopicID       *uint     `json:"topic_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParticipantCreateDTO enrolls a profile in a competition. IsInvited defaults to true.
type ParticipantCreateDTO struct {
	CompetitionID uint      `json:"competition_id" binding:"required"`
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	IsInvited     *bool     `json:"is_invited"`
}

type ParticipantResponseDTO struct {
	ID            uint       `json:"id"`
	CompetitionID uint       `json:"competition_id"`
	UserID        uuid.UUID  `json:"user_id"`
	IsInvited     bool       `json:"is_invited"`
	HasJoined     bool       `json:"has_joined"`
	JoinedAt      *time.Time `json:"joined_at"`
	Score         int        `json:"score"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ParticipantAnswerCreateDTO is a submitted answer. IsCorrect is whatever the client
// reports and defaults to false when omitted.
type ParticipantAnswerCreateDTO struct {
	ParticipantID uint  `json:"participant_id" binding:"required"`
	QuestionID    uint  `json:"question_id" binding:"required"`
	AnswerID      *uint `json:"answer_id"`
	IsCorrect     *bool `json:"is_correct"`
	TimeTaken     *int  `json:"time_taken"`
}

type ParticipantAnswerResponseDTO struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	QuestionID    uint      `json:"question_id"`
	AnswerID      *uint     `json:"answer_id"`
	IsCorrect     bool      `json:"is_correct"`
	TimeTaken     *int      `json:"time_taken"`
	CreatedAt     time.Time `json:"created_at"`
}
