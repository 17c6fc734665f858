package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
	"github.com/brandonyen/scout-gg/internal/service"
	"github.com/brandonyen/scout-gg/internal/service/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(gateway *testutil.MockGateway, store *testutil.MockLookupStore) *httptest.Server {
	logger := zerolog.Nop()
	aggregationSvc := service.NewAggregationService(gateway, logger)
	lookupSvc := service.NewLookupService(store, logger)

	mux := http.NewServeMux()
	New(aggregationSvc, lookupSvc, gateway, logger).Register(mux)
	return httptest.NewServer(mux)
}

func TestHandleUserInfo(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := new(testutil.MockLookupStore)

	gateway.On("AccountByRiotID", mock.Anything, "Hide on bush", "KR1").
		Return(&riot.AccountResponse{Puuid: "puuid-1", GameName: "Hide on bush", TagLine: "KR1"}, nil)
	gateway.On("SummonerByPuuid", mock.Anything, "puuid-1").
		Return(&riot.SummonerResponse{ID: "summoner-1", Puuid: "puuid-1", ProfileIconID: 10, SummonerLevel: 99}, nil)
	gateway.On("LeagueEntriesBySummoner", mock.Anything, "summoner-1").
		Return([]riot.LeagueEntry{{QueueType: riot.QueueRankedSolo, Tier: "GOLD", Rank: "II", LeaguePoints: 45}}, nil)
	gateway.On("MatchIDsByPuuid", mock.Anything, "puuid-1", 1).
		Return([]string{"NA1_1"}, nil)
	gateway.On("MatchByID", mock.Anything, "NA1_1").
		Return(testutil.NewMatch("NA1_1", 420, true), nil)
	store.On("Record", mock.Anything, mock.Anything).Return(nil)

	srv := newTestServer(gateway, store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/userInfo/Hide%20on%20bush/KR1?count=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body userInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Hide on bush", body.GameName)
	assert.Equal(t, "puuid-1", body.Puuid)
	assert.Equal(t, 99, body.Level)
	require.NotNil(t, body.CurrentRank)
	assert.Equal(t, "GOLD", body.CurrentRank.Tier)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "Ranked Solo/Duo", body.Matches[0].QueueLabel)
	assert.Equal(t, string(domain.SideBlue), body.Matches[0].WinningSide)
}

func TestHandleUserInfoNotFound(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := new(testutil.MockLookupStore)

	gateway.On("AccountByRiotID", mock.Anything, "Ghost", "NA1").
		Return((*riot.AccountResponse)(nil), riot.ErrNotFound)

	srv := newTestServer(gateway, store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/userInfo/Ghost/NA1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	store.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestHandleMatchList(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := new(testutil.MockLookupStore)

	gateway.On("MatchIDsByPuuid", mock.Anything, "puuid-1", 10).
		Return([]string{"NA1_1", "NA1_2"}, nil)

	srv := newTestServer(gateway, store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/matchList/puuid-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	assert.Equal(t, []string{"NA1_1", "NA1_2"}, ids)
}

func TestHandleMatchInfo(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := new(testutil.MockLookupStore)

	gateway.On("MatchByID", mock.Anything, "NA1_1").
		Return(testutil.NewMatch("NA1_1", 450, false), nil)

	srv := newTestServer(gateway, store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/matchInfo/NA1_1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body matchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ARAM", body.QueueLabel)
	assert.Equal(t, string(domain.SideRed), body.WinningSide)
	assert.Len(t, body.BlueTeam, 5)
	assert.Len(t, body.RedTeam, 5)
}

func TestHandleSuggestions(t *testing.T) {
	gateway := new(testutil.MockGateway)
	store := new(testutil.MockLookupStore)

	store.On("Search", mock.Anything, "bush", 10).
		Return([]domain.Lookup{{GameName: "Hide on bush", TagLine: "KR1", Puuid: "puuid-1"}}, nil)

	srv := newTestServer(gateway, store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/suggestions?q=bush")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []suggestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Hide on bush", body[0].GameName)
}
