package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/brandonyen/scout-gg/internal/database"
	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, zerolog.Nop()))
	return db
}

func TestLookupRepositoryRecordAndSearch(t *testing.T) {
	repo := NewLookupRepository(newTestDB(t), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, domain.Lookup{GameName: "Hide on bush", TagLine: "KR1", Puuid: "puuid-1"}))
	require.NoError(t, repo.Record(ctx, domain.Lookup{GameName: "Doublelift", TagLine: "NA1", Puuid: "puuid-2"}))

	lookups, err := repo.Search(ctx, "bush", 10)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	assert.Equal(t, "Hide on bush", lookups[0].GameName)
	assert.Equal(t, "KR1", lookups[0].TagLine)
	assert.Equal(t, "puuid-1", lookups[0].Puuid)
	assert.NotEmpty(t, lookups[0].ID)
}

func TestLookupRepositoryUpsertsByPuuid(t *testing.T) {
	repo := NewLookupRepository(newTestDB(t), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, domain.Lookup{GameName: "OldName", TagLine: "NA1", Puuid: "puuid-1"}))
	require.NoError(t, repo.Record(ctx, domain.Lookup{GameName: "NewName", TagLine: "NA1", Puuid: "puuid-1"}))

	lookups, err := repo.Search(ctx, "Name", 10)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	assert.Equal(t, "NewName", lookups[0].GameName)
}

func TestLookupRepositorySearchLimit(t *testing.T) {
	repo := NewLookupRepository(newTestDB(t), zerolog.Nop())
	ctx := context.Background()

	for _, puuid := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.Record(ctx, domain.Lookup{GameName: "Player " + puuid, TagLine: "NA1", Puuid: puuid}))
	}

	lookups, err := repo.Search(ctx, "Player", 2)
	require.NoError(t, err)
	assert.Len(t, lookups, 2)
}

func TestMatchCacheRepositoryRoundTrip(t *testing.T) {
	repo := NewMatchCacheRepository(newTestDB(t), zerolog.Nop())
	ctx := context.Background()

	match := &riot.MatchResponse{
		Metadata: riot.MatchMetadata{MatchID: "NA1_1"},
		Info: riot.MatchInfo{
			QueueID: 420,
			Participants: []riot.Participant{
				{RiotIDGameName: "Player0", ChampionName: "Ahri", Kills: 3, Win: true},
			},
		},
	}

	got, err := repo.GetMatch(ctx, "NA1_1")
	require.NoError(t, err)
	assert.Nil(t, got, "miss should be (nil, nil)")

	require.NoError(t, repo.PutMatch(ctx, "NA1_1", match))

	got, err = repo.GetMatch(ctx, "NA1_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, match, got)
}

func TestMatchCacheRepositoryFirstWriteWins(t *testing.T) {
	repo := NewMatchCacheRepository(newTestDB(t), zerolog.Nop())
	ctx := context.Background()

	first := &riot.MatchResponse{Metadata: riot.MatchMetadata{MatchID: "NA1_1"}, Info: riot.MatchInfo{QueueID: 420}}
	second := &riot.MatchResponse{Metadata: riot.MatchMetadata{MatchID: "NA1_1"}, Info: riot.MatchInfo{QueueID: 450}}

	require.NoError(t, repo.PutMatch(ctx, "NA1_1", first))
	require.NoError(t, repo.PutMatch(ctx, "NA1_1", second))

	got, err := repo.GetMatch(ctx, "NA1_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 420, got.Info.QueueID)
}
