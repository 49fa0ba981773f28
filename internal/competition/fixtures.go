package competition

import (
	"errors"
	"fmt"
)

// ErrTooFewTeams is returned when a schedule is requested for fewer than
// two teams.
var ErrTooFewTeams = errors.New("at least two teams are required to build a schedule")

// byeTeam is the sentinel slotted in when an odd-sized field needs a
// resting side each round.
const byeTeam int64 = -1

// Fixture is one scheduled match. HomeGoals and AwayGoals hold -1 until
// the fixture is played. Round carries the knockout stage code (R32,
// R16, QF, SF, F) or a matchday label for league play.
type Fixture struct {
	ID                 int64  `json:"id"`
	Competition        string `json:"competition"`
	Matchday           int    `json:"matchday"`
	Round              string `json:"round"`
	HomeTeamID         int64  `json:"home_team_id"`
	AwayTeamID         int64  `json:"away_team_id"`
	Played             bool   `json:"played"`
	HomeGoals          int    `json:"home_goals"`
	AwayGoals          int    `json:"away_goals"`
	DecidedByPenalties bool   `json:"decided_by_penalties"`
	HomePenalties      int    `json:"home_penalties"`
	AwayPenalties      int    `json:"away_penalties"`
	Neutral            bool   `json:"neutral"`
	Seed               int64  `json:"seed"`
}

// Winner returns the advancing team of a played knockout fixture.
func (f Fixture) Winner() int64 {
	switch {
	case f.HomeGoals > f.AwayGoals:
		return f.HomeTeamID
	case f.AwayGoals > f.HomeGoals:
		return f.AwayTeamID
	case f.HomePenalties > f.AwayPenalties:
		return f.HomeTeamID
	default:
		return f.AwayTeamID
	}
}

// GenerateLeague builds a double round-robin using the circle method:
// the first team stays fixed while the rest rotate one slot per round.
// Odd-sized fields get a bye each round. The second leg mirrors the
// first with home and away swapped. Each of n teams plays 2*(n-1)
// matches, n*(n-1) fixtures in total.
func GenerateLeague(competitionCode string, teamIDs []int64, firstMatchday int) ([]Fixture, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTeams, len(teamIDs))
	}

	teams := make([]int64, len(teamIDs))
	copy(teams, teamIDs)
	if len(teams)%2 != 0 {
		teams = append(teams, byeTeam)
	}

	n := len(teams)
	rounds := n - 1

	var firstLeg []Fixture
	for round := 0; round < rounds; round++ {
		matchday := firstMatchday + round
		for i := 0; i < n/2; i++ {
			homeID := teams[i]
			awayID := teams[n-1-i]
			if homeID == byeTeam || awayID == byeTeam {
				continue
			}
			firstLeg = append(firstLeg, Fixture{
				Competition: competitionCode,
				Matchday:    matchday,
				Round:       fmt.Sprintf("MD%d", matchday),
				HomeTeamID:  homeID,
				AwayTeamID:  awayID,
				HomeGoals:   -1,
				AwayGoals:   -1,
			})
		}
		// Rotate: the last team moves to slot 1, everyone between
		// shifts right, teams[0] never moves.
		last := teams[n-1]
		copy(teams[2:], teams[1:n-1])
		teams[1] = last
	}

	fixtures := make([]Fixture, 0, len(firstLeg)*2)
	fixtures = append(fixtures, firstLeg...)
	for _, f := range firstLeg {
		mirror := f
		mirror.HomeTeamID = f.AwayTeamID
		mirror.AwayTeamID = f.HomeTeamID
		mirror.Matchday = f.Matchday + rounds
		mirror.Round = fmt.Sprintf("MD%d", mirror.Matchday)
		fixtures = append(fixtures, mirror)
	}

	return fixtures, nil
}

// GenerateKnockout pairs teams positionally: first vs second, third vs
// fourth, and so on. A trailing unpaired team is dropped. Set neutral
// for single-venue rounds such as a final.
func GenerateKnockout(competitionCode string, teamIDs []int64, round string, matchday int, neutral bool) ([]Fixture, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTeams, len(teamIDs))
	}

	var fixtures []Fixture
	for i := 0; i+1 < len(teamIDs); i += 2 {
		fixtures = append(fixtures, Fixture{
			Competition: competitionCode,
			Matchday:    matchday + i/2,
			Round:       round,
			HomeTeamID:  teamIDs[i],
			AwayTeamID:  teamIDs[i+1],
			HomeGoals:   -1,
			AwayGoals:   -1,
			Neutral:     neutral,
		})
	}
	return fixtures, nil
}
