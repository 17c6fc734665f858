package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// MockGateway is a testify mock of the upstream gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.AccountResponse, error) {
	args := m.Called(ctx, gameName, tagLine)
	return args.Get(0).(*riot.AccountResponse), args.Error(1)
}

func (m *MockGateway) SummonerByPuuid(ctx context.Context, puuid string) (*riot.SummonerResponse, error) {
	args := m.Called(ctx, puuid)
	return args.Get(0).(*riot.SummonerResponse), args.Error(1)
}

func (m *MockGateway) LeagueEntriesBySummoner(ctx context.Context, summonerID string) ([]riot.LeagueEntry, error) {
	args := m.Called(ctx, summonerID)
	return args.Get(0).([]riot.LeagueEntry), args.Error(1)
}

func (m *MockGateway) MatchIDsByPuuid(ctx context.Context, puuid string, count int) ([]string, error) {
	args := m.Called(ctx, puuid, count)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGateway) MatchByID(ctx context.Context, matchID string) (*riot.MatchResponse, error) {
	args := m.Called(ctx, matchID)
	return args.Get(0).(*riot.MatchResponse), args.Error(1)
}

// MockLookupStore is a testify mock of the lookup store.
type MockLookupStore struct {
	mock.Mock
}

func (m *MockLookupStore) Record(ctx context.Context, lookup domain.Lookup) error {
	args := m.Called(ctx, lookup)
	return args.Error(0)
}

func (m *MockLookupStore) Search(ctx context.Context, query string, limit int) ([]domain.Lookup, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]domain.Lookup), args.Error(1)
}

// NewMatch builds a well-formed ten-participant match payload. The first
// five participants are the blue roster; win sets the blue side's flag.
func NewMatch(matchID string, queueID int, blueWins bool) *riot.MatchResponse {
	participants := make([]riot.Participant, 0, 10)
	for i := 0; i < 10; i++ {
		participants = append(participants, riot.Participant{
			Puuid:          fmt.Sprintf("puuid-%d", i),
			RiotIDGameName: fmt.Sprintf("Player%d", i),
			RiotIDTagline:  "NA1",
			ChampionName:   fmt.Sprintf("Champion%d", i),
			Kills:          i,
			Deaths:         10 - i,
			Assists:        i * 2,
			Win:            (i < 5) == blueWins,
		})
	}

	return &riot.MatchResponse{
		Metadata: riot.MatchMetadata{MatchID: matchID},
		Info: riot.MatchInfo{
			QueueID:      queueID,
			Participants: participants,
		},
	}
}
