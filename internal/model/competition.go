package model

import (
	"time"

	"github.com/google/uuid"
)

// CompetitionStatusWaiting is the only status a competition is ever given; nothing transitions it.
const CompetitionStatusWaiting = "waiting"

type Competition struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Title           string     `json:"title" gorm:"type:text;not null"`
	Subject         string     `json:"subject" gorm:"type:text;not null"`
	QuestionCount   int        `json:"question_count" gorm:"not null"`
	TimePerQuestion int        `json:"time_per_question" gorm:"not null"` // seconds
	MaxParticipants int        `json:"max_participants" gorm:"not null"`
	Difficulty      string     `json:"difficulty" gorm:"type:text;not null"`
	IsPrivate       bool       `json:"is_private" gorm:"not null"`
	AllowMidJoin    bool       `json:"allow_mid_join" gorm:"not null"`
	ShowLeaderboard bool       `json:"show_leaderboard" gorm:"not null"`
	Duration        int        `json:"duration" gorm:"not null"` // minutes
	CreatedBy       uuid.UUID  `json:"created_by" gorm:"type:uuid;not null;index"`
	Creator         *Profile   `json:"-" gorm:"foreignKey:CreatedBy;references:UserID"`
	Status          string     `json:"status" gorm:"type:text;not null;default:'waiting'"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

type CompetitionQuestion struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	CompetitionID uint         `json:"competition_id" gorm:"not null;index"`
	Competition   *Competition `json:"-" gorm:"foreignKey:CompetitionID"`
	QuestionText  string       `json:"question_text" gorm:"type:text;not null"`
	// No foreign key: the question-bank topic table is not part of this service.
	TopicID       *uint        `json:"topic_id,omitempty" gorm:"index"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CompetitionParticipant is a profile's enrollment in a competition. Score, HasJoined and
// Completed are stored values only; no request path computes or advances them.
type CompetitionParticipant struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	CompetitionID uint         `json:"competition_id" gorm:"not null;index"`
	Competition   *Competition `json:"-" gorm:"foreignKey:CompetitionID"`
	UserID        uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	IsInvited     bool         `json:"is_invited" gorm:"not null"`
	HasJoined     bool         `json:"has_joined" gorm:"not null"`
	JoinedAt      *time.Time   `json:"joined_at,omitempty"`
	Score         int          `json:"score" gorm:"not null;default:0"`
	Completed     bool         `json:"completed" gorm:"not null"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

type ParticipantAnswer struct {
	ID            uint                    `gorm:"primarykey" json:"id"`
	ParticipantID uint                    `json:"participant_id" gorm:"not null;index"`
	Participant   *CompetitionParticipant `json:"-" gorm:"foreignKey:ParticipantID"`
	QuestionID    uint                    `json:"question_id" gorm:"not null;index"`
	Question      *CompetitionQuestion    `json:"-" gorm:"foreignKey:QuestionID"`
	AnswerID      *uint                   `json:"answer_id,omitempty"`
	Answer        *QuestionAnswer         `json:"-" gorm:"foreignKey:AnswerID"`
	IsCorrect     bool                    `json:"is_correct" gorm:"not null"` // as reported by the client
	TimeTaken     *int                    `json:"time_taken,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}
