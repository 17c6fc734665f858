package domain

import (
	"time"
)

// Side is one of the two five-player groupings within a match. Riot orders
// participants blue side first (positions 0-4), red side second (5-9).
type Side string

const (
	SideBlue Side = "Blue"
	SideRed  Side = "Red"
)

const TeamSize = 5

// PlayerIdentity is the resolved riot id plus its stable account key.
// Resolved once per aggregation and never mutated afterwards.
type PlayerIdentity struct {
	GameName string
	TagLine  string
	Puuid    string
}

// SummonerProfile is summoner-level metadata, distinct from the account
// identity.
type SummonerProfile struct {
	Puuid         string
	SummonerID    string
	ProfileIconID int
	Level         int
}

// RankEntry is one per-queue ranked standing.
type RankEntry struct {
	QueueType    string
	Tier         string
	Division     string
	LeaguePoints int
}

// PlayerStats holds the per-participant combat line shown in the match row.
type PlayerStats struct {
	GameName     string
	TagLine      string
	ChampionName string
	Kills        int
	Deaths       int
	Assists      int
}

// MatchSummary is the normalized, UI-ready shape of one match.
type MatchSummary struct {
	MatchID     string
	QueueLabel  string
	WinningSide Side
	BlueTeam    []PlayerStats
	RedTeam     []PlayerStats
}

// AggregationResult is the terminal output of one aggregation run. Built
// fresh per request and handed to the caller as-is.
type AggregationResult struct {
	Identity    PlayerIdentity
	Profile     SummonerProfile
	CurrentRank *RankEntry
	Matches     []MatchSummary
}

// Lookup records one successful identity resolution, powering search
// suggestions.
type Lookup struct {
	ID         string
	GameName   string
	TagLine    string
	Puuid      string
	LookedUpAt time.Time
}
