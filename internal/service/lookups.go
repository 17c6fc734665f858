package service

import (
	"context"

	"github.com/brandonyen/scout-gg/internal/constants"
	"github.com/brandonyen/scout-gg/internal/domain"

	"github.com/rs/zerolog"
)

// LookupService keeps the history of resolved players and answers search
// suggestions from it. Recording is best-effort; a storage failure never
// affects the aggregation that triggered it.
type LookupService struct {
	store  LookupStore
	logger zerolog.Logger
}

func NewLookupService(store LookupStore, logger zerolog.Logger) *LookupService {
	return &LookupService{store: store, logger: logger}
}

func (s *LookupService) Record(ctx context.Context, identity domain.PlayerIdentity) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	lookup := domain.Lookup{
		GameName: identity.GameName,
		TagLine:  identity.TagLine,
		Puuid:    identity.Puuid,
	}
	if err := s.store.Record(dbCtx, lookup); err != nil {
		s.logger.Warn().Err(err).Str("puuid", identity.Puuid).Msg("failed to record lookup")
	}
}

func (s *LookupService) Suggest(ctx context.Context, query string) ([]domain.Lookup, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Debug().Str("query", query).Msg("searching lookups")

	lookups, err := s.store.Search(dbCtx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search lookups")
		return nil, err
	}

	s.logger.Info().Int("count", len(lookups)).Str("query", query).Msg("search completed")
	return lookups, nil
}
