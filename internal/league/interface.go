package league

import (
	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	UpsertTeams(teams []Team) error
	GetTeams(competitionCode string) ([]Team, error)
	GetTeam(teamID int64) (*Team, error)

	UpsertPlayers(players []Player) error
	GetRoster(teamID int64) ([]Player, error)
	GetAllPlayers() ([]Player, error)
	SetPlayerUnavailable(playerID int64, weeks int) error
	TickAvailability() error
	AdjustTeamMorale(teamID int64, delta int) error

	SaveTactic(teamID int64, tactic matchsim.Tactic) error
	GetTactic(teamID int64) (matchsim.Tactic, error)

	InsertFixtures(fixtures []competition.Fixture) ([]competition.Fixture, error)
	GetFixtures(competitionCode string, matchday int) ([]competition.Fixture, error)
	GetFixturesByRound(competitionCode, round string) ([]competition.Fixture, error)
	GetAllFixtures(competitionCode string) ([]competition.Fixture, error)
	RecordResult(fixture competition.Fixture, events []matchsim.MatchEvent) error
	GetFixtureEvents(fixtureID int64) ([]matchsim.MatchEvent, error)
	DeleteFixtures(competitionCode string) error

	Clear()
}
