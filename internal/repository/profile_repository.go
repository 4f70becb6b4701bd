package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
}

type profileRepository struct {
	profiles *Store[model.Profile]
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{profiles: NewStore[model.Profile](db)}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.profiles.Create(ctx, profile)
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return r.profiles.FindOne(ctx, Where("user_id", userID))
}

type UniversityRepository interface {
	Create(ctx context.Context, university *model.University) error
	FindAll(ctx context.Context) ([]model.University, error)
}

type universityRepository struct {
	universities *Store[model.University]
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{universities: NewStore[model.University](db)}
}

func (r *universityRepository) Create(ctx context.Context, university *model.University) error {
	return r.universities.Create(ctx, university)
}

func (r *universityRepository) FindAll(ctx context.Context) ([]model.University, error) {
	return r.universities.FindAll(ctx)
}
