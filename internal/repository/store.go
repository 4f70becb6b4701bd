package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter restricts a lookup to rows whose Column equals Value. Columns are always fixed by
// the calling repository, never taken from a request.
type Filter struct {
	Column string
	Value  any
}

func Where(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Store is the accessor set every entity shares: insert-and-return, point lookup,
// filtered list and single-column update. Each call is one statement on its own
// request-scoped session.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// WithTx returns a Store bound to an open transaction.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{db: tx}
}

// Create inserts entity and refreshes it with store-assigned values (ids, timestamps).
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("insert %T: %w", entity, err)
	}
	return nil
}

// FindOne returns the first row matching every filter, or ErrNotFound.
func (s *Store[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	var entity T
	err := s.scoped(ctx, filters).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %T: %w", entity, err)
	}
	return &entity, nil
}

// FindAll returns every row matching the filters in primary key order. No match is an
// empty slice, not an error.
func (s *Store[T]) FindAll(ctx context.Context, filters ...Filter) ([]T, error) {
	entities := make([]T, 0)
	err := s.scoped(ctx, filters).
		Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("list %T: %w", entities, err)
	}
	return entities, nil
}

// UpdateColumn sets one column on the row selected by key. ErrNotFound when nothing matched.
func (s *Store[T]) UpdateColumn(ctx context.Context, key Filter, column string, value any) error {
	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where(eq(key)).
		Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update %T.%s: %w", new(T), column, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store[T]) scoped(ctx context.Context, filters []Filter) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, f := range filters {
		q = q.Where(eq(f))
	}
	return q
}

func eq(f Filter) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value}
}
