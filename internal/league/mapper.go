package league

import (
	"sort"

	"github.com/mauv0809/ligasim/internal/development"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

// lineup shape: one keeper, four defenders, four midfielders, two
// forwards.
var lineupShape = []struct {
	position development.Position
	count    int
}{
	{development.PositionGoalkeeper, 1},
	{development.PositionDefender, 4},
	{development.PositionMidfielder, 4},
	{development.PositionForward, 2},
}

// BuildMatchEntry assembles the simulator-facing view of a team from
// its persisted roster. Sidelined players are skipped; each positional
// slot takes the best available by quality, and gaps are backfilled
// with the best leftovers so a depleted squad still fields what it has.
func BuildMatchEntry(team Team, roster []Player, tactic matchsim.Tactic, home bool) matchsim.TeamMatchEntry {
	available := make([]Player, 0, len(roster))
	for _, p := range roster {
		if p.Status != development.StatusActive || p.UnavailableWeeks > 0 {
			continue
		}
		available = append(available, p)
	}
	sort.SliceStable(available, func(i, j int) bool {
		if available[i].Quality != available[j].Quality {
			return available[i].Quality > available[j].Quality
		}
		return available[i].ID < available[j].ID
	})

	picked := make(map[int64]bool)
	var lineup []matchsim.PlayerAttributes
	for _, slot := range lineupShape {
		taken := 0
		for _, p := range available {
			if taken >= slot.count {
				break
			}
			if picked[p.ID] || p.Position != slot.position {
				continue
			}
			picked[p.ID] = true
			lineup = append(lineup, p.PlayerAttributes)
			taken++
		}
	}
	for _, p := range available {
		if len(lineup) >= 11 {
			break
		}
		if picked[p.ID] {
			continue
		}
		picked[p.ID] = true
		lineup = append(lineup, p.PlayerAttributes)
	}

	return matchsim.TeamMatchEntry{
		TeamID:      team.ID,
		Name:        team.Name,
		Competition: team.Competition,
		Lineup:      lineup,
		Tactic:      tactic,
		Home:        home,
	}
}
