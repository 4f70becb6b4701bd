package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	FindByCode(ctx context.Context, code string) (*model.Course, error)
}

type courseRepository struct {
	courses *Store[model.Course]
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{courses: NewStore[model.Course](db)}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.courses.Create(ctx, course)
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return r.courses.FindOne(ctx, Where("id", id))
}

func (r *courseRepository) FindByCode(ctx context.Context, code string) (*model.Course, error) {
	return r.courses.FindOne(ctx, Where("code", code))
}

type CourseFileRepository interface {
	Create(ctx context.Context, file *model.CourseFile) error
	FindByID(ctx context.Context, id uint) (*model.CourseFile, error)
	FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]model.CourseFile, error)
}

type courseFileRepository struct {
	files *Store[model.CourseFile]
}

func NewCourseFileRepository(db *gorm.DB) CourseFileRepository {
	return &courseFileRepository{files: NewStore[model.CourseFile](db)}
}

func (r *courseFileRepository) Create(ctx context.Context, file *model.CourseFile) error {
	return r.files.Create(ctx, file)
}

func (r *courseFileRepository) FindByID(ctx context.Context, id uint) (*model.CourseFile, error) {
	return r.files.FindOne(ctx, Where("id", id))
}

func (r *courseFileRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]model.CourseFile, error) {
	return r.files.FindAll(ctx, Where("course_id", courseID))
}
