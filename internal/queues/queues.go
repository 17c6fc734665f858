package queues

// Display labels for the queue ids this service surfaces. Riot keeps the
// full list in its static queues.json; these are the ones that show up in
// ranked-adjacent match histories.
var queueLabels = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	490:  "Quickplay",
	700:  "Clash",
	720:  "ARAM Clash",
	900:  "ARURF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "URF",
}

// DefaultLabel is returned for any queue id not in the table.
const DefaultLabel = "Custom or Other"

// Label maps a numeric queue id to its display label. Total over all ints.
func Label(queueID int) string {
	if label, ok := queueLabels[queueID]; ok {
		return label
	}
	return DefaultLabel
}
