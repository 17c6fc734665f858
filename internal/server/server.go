package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/brandonyen/scout-gg/internal/constants"
	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
	"github.com/brandonyen/scout-gg/internal/service"
	"github.com/brandonyen/scout-gg/internal/summary"

	"github.com/rs/zerolog"
)

// Server exposes the aggregation pipeline over a small JSON API. It is a
// thin wrapper: all data-flow logic lives in the services.
type Server struct {
	aggregationSvc *service.AggregationService
	lookupSvc      *service.LookupService
	gateway        service.Gateway
	logger         zerolog.Logger
}

func New(aggregationSvc *service.AggregationService, lookupSvc *service.LookupService, gateway service.Gateway, logger zerolog.Logger) *Server {
	return &Server{
		aggregationSvc: aggregationSvc,
		lookupSvc:      lookupSvc,
		gateway:        gateway,
		logger:         logger,
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/userInfo/{gameName}/{tagLine}", s.handleUserInfo)
	mux.HandleFunc("GET /api/matchList/{puuid}", s.handleMatchList)
	mux.HandleFunc("GET /api/matchInfo/{matchId}", s.handleMatchInfo)
	mux.HandleFunc("GET /api/suggestions", s.handleSuggestions)
}

type userInfoResponse struct {
	GameName    string               `json:"gameName"`
	TagLine     string               `json:"tagLine"`
	Puuid       string               `json:"puuid"`
	Level       int                  `json:"level"`
	ProfileIcon int                  `json:"profileIconId"`
	CurrentRank *rankResponse        `json:"currentRank"`
	Matches     []matchResponse      `json:"matches"`
	Diagnostics *service.Diagnostics `json:"diagnostics"`
}

type rankResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	LeaguePoints int    `json:"leaguePoints"`
}

type matchResponse struct {
	MatchID     string           `json:"matchId"`
	QueueLabel  string           `json:"queueLabel"`
	WinningSide string           `json:"winningSide"`
	BlueTeam    []playerResponse `json:"blueTeam"`
	RedTeam     []playerResponse `json:"redTeam"`
}

type playerResponse struct {
	GameName     string `json:"gameName"`
	TagLine      string `json:"tagLine"`
	ChampionName string `json:"championName"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
}

type suggestionResponse struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Puuid    string `json:"puuid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	gameName, err := url.PathUnescape(r.PathValue("gameName"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid game name")
		return
	}
	tagLine, err := url.PathUnescape(r.PathValue("tagLine"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid tag line")
		return
	}
	if gameName == "" || tagLine == "" {
		s.writeError(w, http.StatusBadRequest, "both gameName and tagLine are required")
		return
	}

	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	result, diag, err := s.aggregationSvc.Aggregate(r.Context(), gameName, tagLine, count)
	if err != nil {
		s.writeAggregationError(w, err)
		return
	}

	s.lookupSvc.Record(r.Context(), result.Identity)

	resp := userInfoResponse{
		GameName:    result.Identity.GameName,
		TagLine:     result.Identity.TagLine,
		Puuid:       result.Identity.Puuid,
		Level:       result.Profile.Level,
		ProfileIcon: result.Profile.ProfileIconID,
		Matches:     toMatchResponses(result.Matches),
		Diagnostics: diag,
	}
	if result.CurrentRank != nil {
		resp.CurrentRank = &rankResponse{
			QueueType:    result.CurrentRank.QueueType,
			Tier:         result.CurrentRank.Tier,
			Division:     result.CurrentRank.Division,
			LeaguePoints: result.CurrentRank.LeaguePoints,
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMatchList(w http.ResponseWriter, r *http.Request) {
	puuid := r.PathValue("puuid")
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	if count <= 0 {
		count = constants.DefaultMatchCount
	}

	ids, err := s.gateway.MatchIDsByPuuid(r.Context(), puuid, count)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ids)
}

func (s *Server) handleMatchInfo(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("matchId")

	match, err := s.gateway.MatchByID(r.Context(), matchID)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	matchSummary, err := summary.TransformMatch(match)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, "upstream returned a malformed match")
		return
	}
	s.writeJSON(w, http.StatusOK, toMatchResponse(*matchSummary))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	lookups, err := s.lookupSvc.Suggest(r.Context(), query)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to search lookups")
		return
	}

	suggestions := make([]suggestionResponse, 0, len(lookups))
	for _, l := range lookups {
		suggestions = append(suggestions, suggestionResponse{
			GameName: l.GameName,
			TagLine:  l.TagLine,
			Puuid:    l.Puuid,
		})
	}
	s.writeJSON(w, http.StatusOK, suggestions)
}

func toMatchResponses(matches []domain.MatchSummary) []matchResponse {
	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchResponse(m))
	}
	return out
}

func toMatchResponse(m domain.MatchSummary) matchResponse {
	return matchResponse{
		MatchID:     m.MatchID,
		QueueLabel:  m.QueueLabel,
		WinningSide: string(m.WinningSide),
		BlueTeam:    toPlayerResponses(m.BlueTeam),
		RedTeam:     toPlayerResponses(m.RedTeam),
	}
}

func toPlayerResponses(players []domain.PlayerStats) []playerResponse {
	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, playerResponse{
			GameName:     p.GameName,
			TagLine:      p.TagLine,
			ChampionName: p.ChampionName,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
		})
	}
	return out
}

func (s *Server) writeAggregationError(w http.ResponseWriter, err error) {
	var stageErr *service.StageError
	status := http.StatusBadGateway
	message := "aggregation failed"
	if errors.As(err, &stageErr) {
		message = stageErr.Error()
		if errors.Is(stageErr.Err, service.ErrIdentityNotFound) {
			status = http.StatusNotFound
		}
	}
	s.logger.Error().Err(err).Msg("aggregation request failed")
	s.writeError(w, status, message)
}

func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, riot.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.logger.Error().Err(err).Msg("upstream request failed")
	s.writeError(w, http.StatusBadGateway, "riot api request failed")
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
