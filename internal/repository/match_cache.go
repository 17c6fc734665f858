package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/brandonyen/scout-gg/internal/riot"

	"github.com/rs/zerolog"
)

// MatchCacheRepository stores raw match payloads by match id. Finished
// matches never change upstream, so rows are written once and read
// forever.
type MatchCacheRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchCacheRepository(db *sql.DB, logger zerolog.Logger) *MatchCacheRepository {
	return &MatchCacheRepository{db: db, logger: logger}
}

func (r *MatchCacheRepository) GetMatch(ctx context.Context, matchID string) (*riot.MatchResponse, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
SELECT payload FROM match_cache WHERE match_id = ?
`, matchID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var match riot.MatchResponse
	if err := json.Unmarshal(payload, &match); err != nil {
		r.logger.Warn().Err(err).Str("match_id", matchID).Msg("corrupt cached match payload")
		return nil, err
	}
	return &match, nil
}

func (r *MatchCacheRepository) PutMatch(ctx context.Context, matchID string, match *riot.MatchResponse) error {
	payload, err := json.Marshal(match)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO match_cache (match_id, payload, fetched_at)
VALUES (?, ?, ?)
ON CONFLICT (match_id) DO NOTHING
`, matchID, payload, time.Now())
	return err
}
