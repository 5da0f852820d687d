package model

// SideDetail carries play-by-play derived numbers for one side of a game.
// The upstream feed does not populate these yet, so callers commonly pass
// zero values; the aggregations over them still have to behave.
type SideDetail struct {
	QuarterScores [4]int `json:"quarter_scores"`
	Penalties     int    `json:"penalties"`
	PenaltyYards  int    `json:"penalty_yards"`
	RedZoneTrips  int    `json:"red_zone_trips"`
	RedZoneScores int    `json:"red_zone_scores"`
}

// GameDetail pairs per-side detail with the game it describes.
type GameDetail struct {
	Game GameRecord `json:"game"`
	Home SideDetail `json:"home"`
	Away SideDetail `json:"away"`
}
