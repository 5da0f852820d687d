// Package types contains common types used across the application
package types

// Record is a won/lost/pushed count scoped to some condition (a team's
// games against the spread, favorites straight-up, overs, ...). Pct is
// the rendered win rate, e.g. "56.1%"; it is a string on purpose so the
// wire format never drifts with float precision.
type Record struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pushes int    `json:"pushes"`
	Total  int    `json:"total"`
	Pct    string `json:"pct"`
}

// Decisions returns the count of non-push results.
func (r Record) Decisions() int { return r.Wins + r.Losses }
