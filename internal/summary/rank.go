package summary

import (
	"github.com/brandonyen/scout-gg/internal/domain"
	"github.com/brandonyen/scout-gg/internal/riot"
)

// ResolveRank picks the single rank entry worth displaying: solo/duo if
// present, flex otherwise, nil when the player is unranked. Duplicate
// queue types should not happen upstream; if they do, scan order wins.
func ResolveRank(entries []domain.RankEntry) *domain.RankEntry {
	for _, queueType := range []string{riot.QueueRankedSolo, riot.QueueRankedFlex} {
		for _, entry := range entries {
			if entry.QueueType == queueType {
				return &entry
			}
		}
	}
	return nil
}

// RankFromLeagueEntry maps a raw league entry to the domain shape.
func RankFromLeagueEntry(e riot.LeagueEntry) domain.RankEntry {
	return domain.RankEntry{
		QueueType:    e.QueueType,
		Tier:         e.Tier,
		Division:     e.Rank,
		LeaguePoints: e.LeaguePoints,
	}
}
