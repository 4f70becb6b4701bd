package repository

import (
	"context"

	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type QuestionAnswerRepository interface {
	Create(ctx context.Context, answer *model.QuestionAnswer) error
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.QuestionAnswer, error)
}

type questionAnswerRepository struct {
	answers *Store[model.QuestionAnswer]
}

func NewQuestionAnswerRepository(db *gorm.DB) QuestionAnswerRepository {
	return &questionAnswerRepository{answers: NewStore[model.QuestionAnswer](db)}
}

func (r *questionAnswerRepository) Create(ctx context.Context, answer *model.QuestionAnswer) error {
	return r.answers.Create(ctx, answer)
}

func (r *questionAnswerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.QuestionAnswer, error) {
	return r.answers.FindAll(ctx, Where("question_id", questionID))
}
