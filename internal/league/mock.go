package league

import (
	"sync"

	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

// MockStore is a mock implementation of the LeagueStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertTeamsFunc          func(teams []Team) error
	GetTeamsFunc             func(competitionCode string) ([]Team, error)
	GetTeamFunc              func(teamID int64) (*Team, error)
	UpsertPlayersFunc        func(players []Player) error
	GetRosterFunc            func(teamID int64) ([]Player, error)
	GetAllPlayersFunc        func() ([]Player, error)
	SetPlayerUnavailableFunc func(playerID int64, weeks int) error
	TickAvailabilityFunc     func() error
	AdjustTeamMoraleFunc     func(teamID int64, delta int) error
	SaveTacticFunc           func(teamID int64, tactic matchsim.Tactic) error
	GetTacticFunc            func(teamID int64) (matchsim.Tactic, error)
	InsertFixturesFunc       func(fixtures []competition.Fixture) ([]competition.Fixture, error)
	GetFixturesFunc          func(competitionCode string, matchday int) ([]competition.Fixture, error)
	GetFixturesByRoundFunc   func(competitionCode, round string) ([]competition.Fixture, error)
	GetAllFixturesFunc       func(competitionCode string) ([]competition.Fixture, error)
	RecordResultFunc         func(fixture competition.Fixture, events []matchsim.MatchEvent) error
	GetFixtureEventsFunc     func(fixtureID int64) ([]matchsim.MatchEvent, error)
	DeleteFixturesFunc       func(competitionCode string) error
	ClearFunc                func()

	// Call records
	UpsertTeamsCalls          [][]Team
	UpsertPlayersCalls        [][]Player
	SetPlayerUnavailableCalls []struct {
		PlayerID int64
		Weeks    int
	}
	TickAvailabilityCalls int
	AdjustTeamMoraleCalls []struct {
		TeamID int64
		Delta  int
	}
	InsertFixturesCalls [][]competition.Fixture
	RecordResultCalls   []competition.Fixture
	DeleteFixturesCalls []string
	ClearCalls          int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertTeams(teams []Team) error {
	m.mu.Lock()
	m.UpsertTeamsCalls = append(m.UpsertTeamsCalls, teams)
	m.mu.Unlock()
	if m.UpsertTeamsFunc != nil {
		return m.UpsertTeamsFunc(teams)
	}
	return nil
}

func (m *MockStore) GetTeams(competitionCode string) ([]Team, error) {
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc(competitionCode)
	}
	return nil, nil
}

func (m *MockStore) GetTeam(teamID int64) (*Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return &Team{ID: teamID}, nil
}

func (m *MockStore) UpsertPlayers(players []Player) error {
	m.mu.Lock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetRoster(teamID int64) ([]Player, error) {
	if m.GetRosterFunc != nil {
		return m.GetRosterFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SetPlayerUnavailable(playerID int64, weeks int) error {
	m.mu.Lock()
	m.SetPlayerUnavailableCalls = append(m.SetPlayerUnavailableCalls, struct {
		PlayerID int64
		Weeks    int
	}{playerID, weeks})
	m.mu.Unlock()
	if m.SetPlayerUnavailableFunc != nil {
		return m.SetPlayerUnavailableFunc(playerID, weeks)
	}
	return nil
}

func (m *MockStore) TickAvailability() error {
	m.mu.Lock()
	m.TickAvailabilityCalls++
	m.mu.Unlock()
	if m.TickAvailabilityFunc != nil {
		return m.TickAvailabilityFunc()
	}
	return nil
}

func (m *MockStore) AdjustTeamMorale(teamID int64, delta int) error {
	m.mu.Lock()
	m.AdjustTeamMoraleCalls = append(m.AdjustTeamMoraleCalls, struct {
		TeamID int64
		Delta  int
	}{teamID, delta})
	m.mu.Unlock()
	if m.AdjustTeamMoraleFunc != nil {
		return m.AdjustTeamMoraleFunc(teamID, delta)
	}
	return nil
}

func (m *MockStore) SaveTactic(teamID int64, tactic matchsim.Tactic) error {
	if m.SaveTacticFunc != nil {
		return m.SaveTacticFunc(teamID, tactic)
	}
	return nil
}

func (m *MockStore) GetTactic(teamID int64) (matchsim.Tactic, error) {
	if m.GetTacticFunc != nil {
		return m.GetTacticFunc(teamID)
	}
	return matchsim.DefaultTactic(), nil
}

func (m *MockStore) InsertFixtures(fixtures []competition.Fixture) ([]competition.Fixture, error) {
	m.mu.Lock()
	m.InsertFixturesCalls = append(m.InsertFixturesCalls, fixtures)
	m.mu.Unlock()
	if m.InsertFixturesFunc != nil {
		return m.InsertFixturesFunc(fixtures)
	}
	out := make([]competition.Fixture, len(fixtures))
	for i, f := range fixtures {
		out[i] = f
		out[i].ID = int64(i + 1)
	}
	return out, nil
}

func (m *MockStore) GetFixtures(competitionCode string, matchday int) ([]competition.Fixture, error) {
	if m.GetFixturesFunc != nil {
		return m.GetFixturesFunc(competitionCode, matchday)
	}
	return nil, nil
}

func (m *MockStore) GetFixturesByRound(competitionCode, round string) ([]competition.Fixture, error) {
	if m.GetFixturesByRoundFunc != nil {
		return m.GetFixturesByRoundFunc(competitionCode, round)
	}
	return nil, nil
}

func (m *MockStore) GetAllFixtures(competitionCode string) ([]competition.Fixture, error) {
	if m.GetAllFixturesFunc != nil {
		return m.GetAllFixturesFunc(competitionCode)
	}
	return nil, nil
}

func (m *MockStore) RecordResult(fixture competition.Fixture, events []matchsim.MatchEvent) error {
	m.mu.Lock()
	m.RecordResultCalls = append(m.RecordResultCalls, fixture)
	m.mu.Unlock()
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(fixture, events)
	}
	return nil
}

func (m *MockStore) GetFixtureEvents(fixtureID int64) ([]matchsim.MatchEvent, error) {
	if m.GetFixtureEventsFunc != nil {
		return m.GetFixtureEventsFunc(fixtureID)
	}
	return nil, nil
}

func (m *MockStore) DeleteFixtures(competitionCode string) error {
	m.mu.Lock()
	m.DeleteFixturesCalls = append(m.DeleteFixturesCalls, competitionCode)
	m.mu.Unlock()
	if m.DeleteFixturesFunc != nil {
		return m.DeleteFixturesFunc(competitionCode)
	}
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
