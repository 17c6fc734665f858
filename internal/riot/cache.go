package riot

import (
	"context"

	"github.com/rs/zerolog"
)

// MatchStore is the persistence the cached gateway reads through. Misses
// are reported as (nil, nil).
type MatchStore interface {
	GetMatch(ctx context.Context, matchID string) (*MatchResponse, error)
	PutMatch(ctx context.Context, matchID string, match *MatchResponse) error
}

// CachedGateway serves match details from a store before hitting the API.
// Match payloads are immutable once the game ends, so entries never
// expire. All other calls pass through untouched.
type CachedGateway struct {
	*Client
	store  MatchStore
	logger zerolog.Logger
}

func NewCachedGateway(client *Client, store MatchStore, logger zerolog.Logger) *CachedGateway {
	return &CachedGateway{Client: client, store: store, logger: logger}
}

func (g *CachedGateway) MatchByID(ctx context.Context, matchID string) (*MatchResponse, error) {
	cached, err := g.store.GetMatch(ctx, matchID)
	if err != nil {
		g.logger.Warn().Err(err).Str("match_id", matchID).Msg("match cache read failed")
	}
	if cached != nil {
		g.logger.Debug().Str("match_id", matchID).Msg("match cache hit")
		return cached, nil
	}

	match, err := g.Client.MatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if err := g.store.PutMatch(ctx, matchID, match); err != nil {
		g.logger.Warn().Err(err).Str("match_id", matchID).Msg("match cache write failed")
	}
	return match, nil
}
