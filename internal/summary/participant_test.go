package summary

import (
	"testing"

	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParticipant() riot.Participant {
	return riot.Participant{
		Puuid:          "puuid-0",
		RiotIDGameName: "Hide on bush",
		RiotIDTagline:  "KR1",
		ChampionName:   "Ahri",
		Kills:          12,
		Deaths:         3,
		Assists:        9,
		Win:            true,
	}
}

func TestProjectParticipant(t *testing.T) {
	stats, side, err := ProjectParticipant(validParticipant(), 0)
	require.NoError(t, err)

	assert.Equal(t, domain.SideBlue, side)
	assert.Equal(t, domain.PlayerStats{
		GameName:     "Hide on bush",
		TagLine:      "KR1",
		ChampionName: "Ahri",
		Kills:        12,
		Deaths:       3,
		Assists:      9,
	}, stats)
}

func TestProjectParticipantSides(t *testing.T) {
	tests := []struct {
		name     string
		position int
		expected domain.Side
	}{
		{name: "firstBlueSlot", position: 0, expected: domain.SideBlue},
		{name: "lastBlueSlot", position: 4, expected: domain.SideBlue},
		{name: "firstRedSlot", position: 5, expected: domain.SideRed},
		{name: "lastRedSlot", position: 9, expected: domain.SideRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, side, err := ProjectParticipant(validParticipant(), tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, side)
		})
	}
}

func TestProjectParticipantMalformed(t *testing.T) {
	missingName := validParticipant()
	missingName.RiotIDGameName = ""

	missingChampion := validParticipant()
	missingChampion.ChampionName = ""

	tests := []struct {
		name        string
		participant riot.Participant
		position    int
	}{
		{name: "missingGameName", participant: missingName, position: 0},
		{name: "missingChampion", participant: missingChampion, position: 3},
		{name: "negativePosition", participant: validParticipant(), position: -1},
		{name: "positionPastRoster", participant: validParticipant(), position: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ProjectParticipant(tt.participant, tt.position)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}
