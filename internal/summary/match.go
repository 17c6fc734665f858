package summary

import (
	"fmt"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/queues"
	"github.com/brandonyen/scout-gg/internal/riot"
)

// TransformMatch turns one raw match payload into its normalized summary.
// The winning side is read from participant 0 only: every participant on
// a side carries the same win flag, so the first blue player is a valid
// proxy for the whole match.
func TransformMatch(m *riot.MatchResponse) (*domain.MatchSummary, error) {
	participants := m.Info.Participants
	if len(participants) != 2*domain.TeamSize {
		return nil, fmt.Errorf("%w: expected %d participants, got %d", ErrMalformedRecord, 2*domain.TeamSize, len(participants))
	}

	winningSide := domain.SideRed
	if participants[0].Win {
		winningSide = domain.SideBlue
	}

	out := &domain.MatchSummary{
		MatchID:     m.Metadata.MatchID,
		QueueLabel:  queues.Label(m.Info.QueueID),
		WinningSide: winningSide,
		BlueTeam:    make([]domain.PlayerStats, 0, domain.TeamSize),
		RedTeam:     make([]domain.PlayerStats, 0, domain.TeamSize),
	}

	for i, p := range participants {
		stats, side, err := ProjectParticipant(p, i)
		if err != nil {
			return nil, err
		}
		if side == domain.SideBlue {
			out.BlueTeam = append(out.BlueTeam, stats)
		} else {
			out.RedTeam = append(out.RedTeam, stats)
		}
	}

	return out, nil
}
