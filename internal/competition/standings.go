package competition

import "sort"

// StandingRecord is one row of a league table.
type StandingRecord struct {
	TeamID       int64 `json:"team_id"`
	Position     int   `json:"position"`
	Played       int   `json:"played"`
	Won          int   `json:"won"`
	Drawn        int   `json:"drawn"`
	Lost         int   `json:"lost"`
	GoalsFor     int   `json:"goals_for"`
	GoalsAgainst int   `json:"goals_against"`
	Points       int   `json:"points"`
}

func (r StandingRecord) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// CalculateStandings recomputes the full table from scratch. Fixtures
// referencing teams outside the given set are skipped, as are unplayed
// ones. Ordering is points, then goal difference, then goals scored;
// teams still level keep their input order.
func CalculateStandings(teamIDs []int64, fixtures []Fixture) []StandingRecord {
	index := make(map[int64]int, len(teamIDs))
	records := make([]StandingRecord, len(teamIDs))
	for i, id := range teamIDs {
		index[id] = i
		records[i] = StandingRecord{TeamID: id}
	}

	for _, f := range fixtures {
		if !f.Played {
			continue
		}
		hi, okHome := index[f.HomeTeamID]
		ai, okAway := index[f.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		home := &records[hi]
		away := &records[ai]
		home.Played++
		away.Played++
		home.GoalsFor += f.HomeGoals
		home.GoalsAgainst += f.AwayGoals
		away.GoalsFor += f.AwayGoals
		away.GoalsAgainst += f.HomeGoals

		switch {
		case f.HomeGoals > f.AwayGoals:
			home.Won++
			home.Points += 3
			away.Lost++
		case f.AwayGoals > f.HomeGoals:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Points != records[j].Points {
			return records[i].Points > records[j].Points
		}
		if records[i].GoalDifference() != records[j].GoalDifference() {
			return records[i].GoalDifference() > records[j].GoalDifference()
		}
		return records[i].GoalsFor > records[j].GoalsFor
	})

	for i := range records {
		records[i].Position = i + 1
	}
	return records
}
