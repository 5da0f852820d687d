package model

// Conference names.
const (
	AFC = "AFC"
	NFC = "NFC"
)

// Division names within a conference.
const (
	East  = "East"
	North = "North"
	South = "South"
	West  = "West"
)

// TeamInfo is the reference entity for a team. It is owned by the
// calling layer and read-only to the engine.
type TeamInfo struct {
	Name       string `json:"name"`
	Abbr       string `json:"abbr"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// SameDivision reports whether both teams share conference and division.
func (t TeamInfo) SameDivision(other TeamInfo) bool {
	return t.Conference == other.Conference && t.Division == other.Division
}

// SameConference reports whether both teams share a conference.
func (t TeamInfo) SameConference(other TeamInfo) bool {
	return t.Conference == other.Conference
}

// DraftPick records where a team picked in a season's draft.
// Position is the overall slot, 1-based (1 = first overall).
type DraftPick struct {
	Season   int    `json:"season"`
	Team     string `json:"team"`
	Position int    `json:"position"`
}
