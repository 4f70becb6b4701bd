package model

import "time"

// QuestionAnswer is an answer option offered for a competition question, not a submission.
type QuestionAnswer struct {
	ID         uint                 `gorm:"primarykey" json:"id"`
	QuestionID uint                 `json:"question_id" gorm:"not null;index"`
	Question   *CompetitionQuestion `json:"-" gorm:"foreignKey:QuestionID"`
	AnswerText string               `json:"answer_text" gorm:"type:text;not null"`
	IsCorrect  bool                 `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time            `json:"created_at"`
}
