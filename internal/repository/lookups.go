package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/brandonyen/scout-gg/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// LookupRepository stores one row per known player, refreshed on every
// successful identity resolution.
type LookupRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLookupRepository(db *sql.DB, logger zerolog.Logger) *LookupRepository {
	return &LookupRepository{db: db, logger: logger}
}

func (r *LookupRepository) Record(ctx context.Context, lookup domain.Lookup) error {
	id, err := gonanoid.New()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO lookups (id, game_name, tag_line, puuid, looked_up_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (puuid) DO UPDATE SET
  game_name    = excluded.game_name,
  tag_line     = excluded.tag_line,
  looked_up_at = excluded.looked_up_at
`, id, lookup.GameName, lookup.TagLine, lookup.Puuid, time.Now())
	return err
}

func (r *LookupRepository) Search(ctx context.Context, query string, limit int) ([]domain.Lookup, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
SELECT id, game_name, tag_line, puuid, looked_up_at
FROM lookups
WHERE game_name LIKE ? OR tag_line LIKE ?
ORDER BY looked_up_at DESC
LIMIT ?
`, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.GameName, &l.TagLine, &l.Puuid, &l.LookedUpAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
