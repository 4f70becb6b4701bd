package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *model.ExtractedTopic) error
	// CreateMany inserts every topic or none of them.
	CreateMany(ctx context.Context, topics []model.ExtractedTopic) error
	FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]model.ExtractedTopic, error)
}

type topicRepository struct {
	db     *gorm.DB
	topics *Store[model.ExtractedTopic]
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db, topics: NewStore[model.ExtractedTopic](db)}
}

func (r *topicRepository) Create(ctx context.Context, topic *model.ExtractedTopic) error {
	return r.topics.Create(ctx, topic)
}

func (r *topicRepository) CreateMany(ctx context.Context, topics []model.ExtractedTopic) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := r.topics.WithTx(tx)
		for i := range topics {
			if err := store.Create(ctx, &topics[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *topicRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]model.ExtractedTopic, error) {
	return r.topics.FindAll(ctx, Where("course_id", courseID))
}
