package standings

import "github.com/okian/gridiron/internal/domain/model"

// Game classifications for split-record bookkeeping.
const (
	classDivisional      = "divisional"
	classConference      = "conference"
	classInterConference = "inter-conference"
)

// membership holds the per-call mate sets. Built once from the TeamInfo
// list (O(T*T), T is tens) and reused for every game so classification
// is a map lookup.
type membership struct {
	teams     map[string]model.TeamInfo
	divMates  map[string]map[string]bool
	confMates map[string]map[string]bool
}

func buildMembership(teams []model.TeamInfo) *membership {
	m := &membership{
		teams:     make(map[string]model.TeamInfo, len(teams)),
		divMates:  make(map[string]map[string]bool, len(teams)),
		confMates: make(map[string]map[string]bool, len(teams)),
	}
	for _, t := range teams {
		m.teams[t.Name] = t
		m.divMates[t.Name] = make(map[string]bool)
		m.confMates[t.Name] = make(map[string]bool)
	}
	for _, t := range teams {
		for _, other := range teams {
			if t.Name == other.Name {
				continue
			}
			if t.SameDivision(other) {
				m.divMates[t.Name][other.Name] = true
			}
			if t.SameConference(other) {
				m.confMates[t.Name][other.Name] = true
			}
		}
	}
	return m
}

// classify reports how a game between team and opp counts for team's
// split records.
func (m *membership) classify(team, opp string) string {
	switch {
	case m.divMates[team][opp]:
		return classDivisional
	case m.confMates[team][opp]:
		return classConference
	default:
		return classInterConference
	}
}
