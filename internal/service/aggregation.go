package service

import (
	"context"
	"fmt"

	"github.com/brandonyen/scout-gg/internal/constants"
	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
	"github.com/brandonyen/scout-gg/internal/summary"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// AggregationService runs the match aggregation pipeline: identity →
// profile → (rank ∥ match ids) → match-detail fan-out → per-match
// transform. It holds no state across runs; everything it builds is owned
// by the invocation.
type AggregationService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewAggregationService(gateway Gateway, logger zerolog.Logger) *AggregationService {
	return &AggregationService{gateway: gateway, logger: logger}
}

// Diagnostics tallies the non-terminal losses of one run. A run can
// complete with matches missing; the caller decides whether to surface
// that.
type Diagnostics struct {
	RankUnavailable  bool     `json:"rank_unavailable"`
	FailedFetches    int      `json:"failed_fetches"`
	MalformedMatches int      `json:"malformed_matches"`
	Warnings         []string `json:"warnings,omitempty"`
}

// DroppedMatches is the number of requested matches absent from the
// result.
func (d *Diagnostics) DroppedMatches() int {
	return d.FailedFetches + d.MalformedMatches
}

func (d *Diagnostics) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Aggregate resolves a player's identity and returns their normalized
// recent match history. Terminal failures (identity, profile, match list)
// return a stage-tagged error and no result; rank and per-match failures
// degrade the result and land in diagnostics instead.
func (s *AggregationService) Aggregate(ctx context.Context, gameName, tagLine string, count int) (*domain.AggregationResult, *Diagnostics, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if count <= 0 {
		count = constants.DefaultMatchCount
	}
	if count > constants.MaxMatchCount {
		count = constants.MaxMatchCount
	}

	diag := &Diagnostics{}

	s.logger.Info().Str("game_name", gameName).Str("tag_line", tagLine).Int("count", count).Msg("starting aggregation")

	identity, err := s.resolveIdentity(ctx, gameName, tagLine)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.resolveProfile(ctx, identity.Puuid)
	if err != nil {
		return nil, nil, err
	}

	// Rank is supplementary, so it resolves alongside the match id list
	// and degrades to nil on failure instead of aborting.
	var currentRank *domain.RankEntry
	var matchIDs []string

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		currentRank = s.resolveRank(gCtx, profile.SummonerID, diag)
		return nil
	})
	g.Go(func() error {
		var err error
		matchIDs, err = s.gateway.MatchIDsByPuuid(gCtx, identity.Puuid, count)
		if err != nil {
			return &StageError{Stage: StageMatchList, Err: fmt.Errorf("%w: %w", ErrMatchListUnavailable, err)}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", identity.Puuid).Msg("failed to fetch match id list")
		return nil, nil, err
	}

	s.logger.Debug().Str("puuid", identity.Puuid).Int("match_ids", len(matchIDs)).Msg("fanning out match detail fetches")

	matches := s.fetchAndTransform(ctx, matchIDs, diag)

	s.logger.Info().
		Str("puuid", identity.Puuid).
		Int("matches", len(matches)).
		Int("dropped", diag.DroppedMatches()).
		Bool("rank_unavailable", diag.RankUnavailable).
		Msg("aggregation completed")

	return &domain.AggregationResult{
		Identity:    *identity,
		Profile:     *profile,
		CurrentRank: currentRank,
		Matches:     matches,
	}, diag, nil
}

func (s *AggregationService) resolveIdentity(ctx context.Context, gameName, tagLine string) (*domain.PlayerIdentity, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	account, err := s.gateway.AccountByRiotID(apiCtx, gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("failed to resolve identity")
		return nil, &StageError{Stage: StageIdentity, Err: fmt.Errorf("%w: %w", ErrIdentityNotFound, err)}
	}

	return &domain.PlayerIdentity{
		GameName: account.GameName,
		TagLine:  account.TagLine,
		Puuid:    account.Puuid,
	}, nil
}

func (s *AggregationService) resolveProfile(ctx context.Context, puuid string) (*domain.SummonerProfile, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	summoner, err := s.gateway.SummonerByPuuid(apiCtx, puuid)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to resolve summoner profile")
		return nil, &StageError{Stage: StageProfile, Err: fmt.Errorf("%w: %w", ErrProfileUnavailable, err)}
	}

	return &domain.SummonerProfile{
		Puuid:         summoner.Puuid,
		SummonerID:    summoner.ID,
		ProfileIconID: summoner.ProfileIconID,
		Level:         summoner.SummonerLevel,
	}, nil
}

func (s *AggregationService) resolveRank(ctx context.Context, summonerID string, diag *Diagnostics) *domain.RankEntry {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := s.gateway.LeagueEntriesBySummoner(apiCtx, summonerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("summoner_id", summonerID).Msg("rank resolution failed, continuing without rank")
		diag.RankUnavailable = true
		diag.warnf("rank unavailable: %v", err)
		return nil
	}

	ranks := make([]domain.RankEntry, 0, len(entries))
	for _, entry := range entries {
		ranks = append(ranks, summary.RankFromLeagueEntry(entry))
	}
	return summary.ResolveRank(ranks)
}

// fetchAndTransform fans out match-detail fetches with bounded
// concurrency and folds the payloads into summaries. Results keep the id
// list's order regardless of completion order: each goroutine writes into
// its own slot. Per-match failures drop that match only.
func (s *AggregationService) fetchAndTransform(ctx context.Context, matchIDs []string, diag *Diagnostics) []domain.MatchSummary {
	raw := make([]*riot.MatchResponse, len(matchIDs))
	fetchErrs := make([]error, len(matchIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MatchFetchConcurrency)
	for i, matchID := range matchIDs {
		g.Go(func() error {
			match, err := s.gateway.MatchByID(gCtx, matchID)
			if err != nil {
				fetchErrs[i] = err
				return nil
			}
			raw[i] = match
			return nil
		})
	}
	// Goroutines never return errors; partial failure is per-slot.
	_ = g.Wait()

	matches := make([]domain.MatchSummary, 0, len(matchIDs))
	for i, matchID := range matchIDs {
		if fetchErrs[i] != nil {
			s.logger.Warn().Err(fetchErrs[i]).Str("match_id", matchID).Msg("match fetch failed, dropping match")
			diag.FailedFetches++
			diag.warnf("match %s: fetch failed: %v", matchID, fetchErrs[i])
			continue
		}

		matchSummary, err := summary.TransformMatch(raw[i])
		if err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("malformed match payload, dropping match")
			diag.MalformedMatches++
			diag.warnf("match %s: %v", matchID, err)
			continue
		}
		matches = append(matches, *matchSummary)
	}
	return matches
}
