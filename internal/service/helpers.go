package service

import (
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// storeFailure starts an error event for a failed store call, tagged with the violated
// constraint when the store reported one.
func storeFailure(err error) *zerolog.Event {
	event := log.Error().Err(err)
	if constraint, ok := repository.ConstraintViolation(err); ok {
		event = event.Str("constraint", constraint)
	}
	return event
}

func toResponse[D any](src any) (*D, error) {
	var resp D
	if err := copier.Copy(&resp, src); err != nil {
		log.Error().Err(err).Msgf("Failed to copy %T to response", src)
		return nil, err
	}
	return &resp, nil
}

func toResponses[D any, M any](rows []M) ([]D, error) {
	resp := make([]D, 0, len(rows))
	if err := copier.Copy(&resp, &rows); err != nil {
		log.Error().Err(err).Msgf("Failed to copy %T to response", rows)
		return nil, err
	}
	return resp, nil
}
