package service

import (
	"context"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
)

// Gateway is the upstream surface the aggregation pipeline consumes. The
// riot client satisfies it directly; the cached gateway satisfies it with
// match details served from sqlite when possible.
type Gateway interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.AccountResponse, error)
	SummonerByPuuid(ctx context.Context, puuid string) (*riot.SummonerResponse, error)
	LeagueEntriesBySummoner(ctx context.Context, summonerID string) ([]riot.LeagueEntry, error)
	MatchIDsByPuuid(ctx context.Context, puuid string, count int) ([]string, error)
	MatchByID(ctx context.Context, matchID string) (*riot.MatchResponse, error)
}

// LookupStore persists successful identity resolutions for search
// suggestions.
type LookupStore interface {
	Record(ctx context.Context, lookup domain.Lookup) error
	Search(ctx context.Context, query string, limit int) ([]domain.Lookup, error)
}
