package repository

import (
	"context"

	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

// CompetitionRepository writes the competition flow rows. Nothing here checks capacity,
// duplicates, status or answer correctness; each call is a single independent statement.
type CompetitionRepository interface {
	Create(ctx context.Context, competition *model.Competition) error
	FindByID(ctx context.Context, id uint) (*model.Competition, error)
	CreateQuestion(ctx context.Context, question *model.CompetitionQuestion) error
	CreateParticipant(ctx context.Context, participant *model.CompetitionParticipant) error
	// MarkJoined flips has_joined on a participant. No request handler calls it yet.
	MarkJoined(ctx context.Context, participantID uint) error
	CreateAnswer(ctx context.Context, answer *model.ParticipantAnswer) error
}

type competitionRepository struct {
	competitions *Store[model.Competition]
	questions    *Store[model.CompetitionQuestion]
	participants *Store[model.CompetitionParticipant]
	answers      *Store[model.ParticipantAnswer]
}

func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{
		competitions: NewStore[model.Competition](db),
		questions:    NewStore[model.CompetitionQuestion](db),
		participants: NewStore[model.CompetitionParticipant](db),
		answers:      NewStore[model.ParticipantAnswer](db),
	}
}

func (r *competitionRepository) Create(ctx context.Context, competition *model.Competition) error {
	return r.competitions.Create(ctx, competition)
}

func (r *competitionRepository) FindByID(ctx context.Context, id uint) (*model.Competition, error) {
	return r.competitions.FindOne(ctx, Where("id", id))
}

func (r *competitionRepository) CreateQuestion(ctx context.Context, question *model.CompetitionQuestion) error {
	return r.questions.Create(ctx, question)
}

func (r *competitionRepository) CreateParticipant(ctx context.Context, participant *model.CompetitionParticipant) error {
	return r.participants.Create(ctx, participant)
}

func (r *competitionRepository) MarkJoined(ctx context.Context, participantID uint) error {
	return r.participants.UpdateColumn(ctx, Where("id", participantID), "has_joined", true)
}

func (r *competitionRepository) CreateAnswer(ctx context.Context, answer *model.ParticipantAnswer) error {
	return r.answers.Create(ctx, answer)
}
