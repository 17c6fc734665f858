package summary

import (
	"fmt"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
)

// ErrMalformedRecord marks a match payload that does not match the
// upstream contract. Matches failing this way are dropped from the
// aggregate and tallied, never surfaced as a run failure.
var ErrMalformedRecord = fmt.Errorf("malformed match record")

// ProjectParticipant maps one raw participant to its stats line and side.
// The side comes from the participant's position: the upstream orders the
// blue roster at 0-4 and the red roster at 5-9.
func ProjectParticipant(p riot.Participant, position int) (domain.PlayerStats, domain.Side, error) {
	if position < 0 || position >= 2*domain.TeamSize {
		return domain.PlayerStats{}, "", fmt.Errorf("%w: participant position %d out of range", ErrMalformedRecord, position)
	}
	if p.RiotIDGameName == "" || p.ChampionName == "" {
		return domain.PlayerStats{}, "", fmt.Errorf("%w: participant %d missing identity fields", ErrMalformedRecord, position)
	}

	stats := domain.PlayerStats{
		GameName:     p.RiotIDGameName,
		TagLine:      p.RiotIDTagline,
		ChampionName: p.ChampionName,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
	}

	side := domain.SideBlue
	if position >= domain.TeamSize {
		side = domain.SideRed
	}
	return stats, side, nil
}
