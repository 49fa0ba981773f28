package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/database"
	"github.com/mauv0809/ligasim/internal/development"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

func newTestStore(t *testing.T) LeagueStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return New(db)
}

func storePlayer(id, teamID int64, name string, quality int) Player {
	p := Player{TeamID: teamID}
	p.ID = id
	p.Name = name
	p.Position = development.PositionMidfielder
	p.BirthYear = 2000
	p.Status = development.StatusActive
	p.Speed = 60
	p.Stamina = 60
	p.Aggression = 50
	p.Quality = quality
	p.Finishing = 55
	p.Dribbling = 55
	p.Passing = 60
	p.ShotPower = 55
	p.Tackling = 50
	p.Form = 50
	p.Morale = 50
	return p
}

func TestStoreTeams(t *testing.T) {
	t.Run("should round-trip teams and filter by competition", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		teams := []Team{
			{ID: 1, Name: "Deportivo Norte", ShortName: "NOR", Competition: "ES1"},
			{ID: 2, Name: "Atletico Sur", ShortName: "SUR", Competition: "ES1"},
			{ID: 3, Name: "Racing Este", ShortName: "EST", Competition: "ES2"},
		}

		// Execute
		require.NoError(t, s.UpsertTeams(teams))
		primera, err := s.GetTeams("ES1")
		require.NoError(t, err)
		all, err := s.GetTeams("")
		require.NoError(t, err)

		// Assert
		assert.Len(t, primera, 2)
		assert.Len(t, all, 3)
	})

	t.Run("should update an existing team on conflict", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Old Name", Competition: "ES1"}}))

		// Execute
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "New Name", Competition: "ES1"}}))
		team, err := s.GetTeam(1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "New Name", team.Name)
	})

	t.Run("should error for an unknown team", func(t *testing.T) {
		// Setup
		s := newTestStore(t)

		// Execute
		_, err := s.GetTeam(42)

		// Assert
		assert.Error(t, err)
	})
}

func TestStorePlayers(t *testing.T) {
	t.Run("should round-trip players and order rosters by quality", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		players := []Player{
			storePlayer(1, 1, "Journeyman", 55),
			storePlayer(2, 1, "Star", 88),
		}

		// Execute
		require.NoError(t, s.UpsertPlayers(players))
		roster, err := s.GetRoster(1)

		// Assert
		require.NoError(t, err)
		require.Len(t, roster, 2)
		assert.Equal(t, "Star", roster[0].Name)
		assert.Equal(t, 88, roster[0].Quality)
	})

	t.Run("should assign IDs to new players", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		youth := storePlayer(0, 1, "Youth 101", 45)

		// Execute
		require.NoError(t, s.UpsertPlayers([]Player{youth}))
		roster, err := s.GetRoster(1)

		// Assert
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.NotZero(t, roster[0].ID)
	})

	t.Run("should exclude retired players from the roster", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		retired := storePlayer(1, 1, "Veteran", 70)
		retired.Status = development.StatusRetired

		// Execute
		require.NoError(t, s.UpsertPlayers([]Player{retired, storePlayer(2, 1, "Kid", 50)}))
		roster, err := s.GetRoster(1)

		// Assert
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, "Kid", roster[0].Name)
	})

	t.Run("should tick injured players back toward fitness", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		require.NoError(t, s.UpsertPlayers([]Player{storePlayer(1, 1, "Crocked", 60)}))
		require.NoError(t, s.SetPlayerUnavailable(1, 2))

		// Execute
		require.NoError(t, s.TickAvailability())
		require.NoError(t, s.TickAvailability())
		require.NoError(t, s.TickAvailability())
		roster, err := s.GetRoster(1)

		// Assert
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Zero(t, roster[0].UnavailableWeeks, "availability should bottom out at zero")
	})

	t.Run("should clamp morale adjustments", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		p := storePlayer(1, 1, "Happy", 60)
		p.Morale = 99
		require.NoError(t, s.UpsertPlayers([]Player{p}))

		// Execute
		require.NoError(t, s.AdjustTeamMorale(1, 5))
		roster, err := s.GetRoster(1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 100, roster[0].Morale)
	})
}

func TestStoreTactics(t *testing.T) {
	t.Run("should round-trip a tactic", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		require.NoError(t, s.UpsertTeams([]Team{{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}}))
		tactic := matchsim.Tactic{
			Style:       matchsim.StyleAttacking,
			Marking:     matchsim.MarkingMan,
			Pressing:    matchsim.PressingHigh,
			Clearances:  matchsim.ClearanceControlled,
			Fouls:       matchsim.FoulsHard,
			CounterBias: 70,
			TimeWasting: true,
		}

		// Execute
		require.NoError(t, s.SaveTactic(1, tactic))
		got, err := s.GetTactic(1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, tactic, got)
	})

	t.Run("should fall back to the default tactic", func(t *testing.T) {
		// Setup
		s := newTestStore(t)

		// Execute
		got, err := s.GetTactic(99)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, matchsim.DefaultTactic(), got)
	})
}

func TestStoreFixtures(t *testing.T) {
	seedTeams := func(t *testing.T, s LeagueStore) {
		t.Helper()
		require.NoError(t, s.UpsertTeams([]Team{
			{ID: 1, Name: "Deportivo Norte", Competition: "ES1"},
			{ID: 2, Name: "Atletico Sur", Competition: "ES1"},
			{ID: 3, Name: "Racing Este", Competition: "ES1"},
			{ID: 4, Name: "Union Oeste", Competition: "ES1"},
		}))
	}

	t.Run("should persist a schedule and assign fixture IDs", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		seedTeams(t, s)
		fixtures, err := competition.GenerateLeague("ES1", []int64{1, 2, 3, 4}, 1)
		require.NoError(t, err)

		// Execute
		inserted, err := s.InsertFixtures(fixtures)
		require.NoError(t, err)

		// Assert
		require.Len(t, inserted, len(fixtures))
		seen := map[int64]bool{}
		for _, f := range inserted {
			assert.NotZero(t, f.ID)
			assert.False(t, seen[f.ID], "fixture IDs should be unique")
			seen[f.ID] = true
		}
	})

	t.Run("should record a result with its timeline", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		seedTeams(t, s)
		inserted, err := s.InsertFixtures([]competition.Fixture{
			{Competition: "ES1", Matchday: 1, Round: "MD1", HomeTeamID: 1, AwayTeamID: 2},
		})
		require.NoError(t, err)
		f := inserted[0]
		f.Played = true
		f.HomeGoals = 2
		f.AwayGoals = 1
		f.Seed = 42
		events := []matchsim.MatchEvent{
			{Minute: 12, Kind: matchsim.EventGoal, TeamID: 1, PlayerID: 7, PlayerName: "Striker", Description: "Striker scores"},
		}

		// Execute
		require.NoError(t, s.RecordResult(f, events))
		got, err := s.GetFixtures("ES1", 1)
		require.NoError(t, err)
		storedEvents, err := s.GetFixtureEvents(f.ID)
		require.NoError(t, err)

		// Assert
		require.Len(t, got, 1)
		assert.True(t, got[0].Played)
		assert.Equal(t, 2, got[0].HomeGoals)
		assert.Equal(t, 1, got[0].AwayGoals)
		assert.Equal(t, int64(42), got[0].Seed)
		require.Len(t, storedEvents, 1)
		assert.Equal(t, matchsim.EventGoal, storedEvents[0].Kind)
	})

	t.Run("should query fixtures by round", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		seedTeams(t, s)
		_, err := s.InsertFixtures([]competition.Fixture{
			{Competition: "CUP", Matchday: 1, Round: "SF", HomeTeamID: 1, AwayTeamID: 2},
			{Competition: "CUP", Matchday: 1, Round: "SF", HomeTeamID: 3, AwayTeamID: 4},
			{Competition: "CUP", Matchday: 2, Round: "F", HomeTeamID: 1, AwayTeamID: 3, Neutral: true},
		})
		require.NoError(t, err)

		// Execute
		semis, err := s.GetFixturesByRound("CUP", "SF")
		require.NoError(t, err)
		final, err := s.GetFixturesByRound("CUP", "F")
		require.NoError(t, err)

		// Assert
		assert.Len(t, semis, 2)
		require.Len(t, final, 1)
		assert.True(t, final[0].Neutral)
	})

	t.Run("should delete a competition's fixtures", func(t *testing.T) {
		// Setup
		s := newTestStore(t)
		seedTeams(t, s)
		_, err := s.InsertFixtures([]competition.Fixture{
			{Competition: "ES1", Matchday: 1, Round: "MD1", HomeTeamID: 1, AwayTeamID: 2},
		})
		require.NoError(t, err)

		// Execute
		require.NoError(t, s.DeleteFixtures("ES1"))
		remaining, err := s.GetAllFixtures("ES1")
		require.NoError(t, err)

		// Assert
		assert.Empty(t, remaining)
	})
}

func TestBuildMatchEntry(t *testing.T) {
	t.Run("should put the keeper first and skip the sidelined", func(t *testing.T) {
		// Setup
		team := Team{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}
		var roster []Player
		gk := storePlayer(1, 1, "Keeper", 70)
		gk.Position = development.PositionGoalkeeper
		roster = append(roster, gk)
		for i := int64(2); i <= 5; i++ {
			d := storePlayer(i, 1, "Defender", 60)
			d.Position = development.PositionDefender
			roster = append(roster, d)
		}
		for i := int64(6); i <= 9; i++ {
			m := storePlayer(i, 1, "Midfielder", 60)
			roster = append(roster, m)
		}
		for i := int64(10); i <= 12; i++ {
			f := storePlayer(i, 1, "Forward", 60)
			f.Position = development.PositionForward
			roster = append(roster, f)
		}
		roster[len(roster)-1].UnavailableWeeks = 3

		// Execute
		entry := BuildMatchEntry(team, roster, matchsim.DefaultTactic(), true)

		// Assert
		require.Len(t, entry.Lineup, 11)
		assert.Equal(t, "Keeper", entry.Lineup[0].Name)
		for _, p := range entry.Lineup {
			assert.NotEqual(t, int64(12), p.ID, "the injured forward should not be picked")
		}
	})

	t.Run("should field a short lineup when the squad is depleted", func(t *testing.T) {
		// Setup
		team := Team{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}
		roster := []Player{storePlayer(1, 1, "Lone Midfielder", 60)}

		// Execute
		entry := BuildMatchEntry(team, roster, matchsim.DefaultTactic(), false)

		// Assert
		assert.Len(t, entry.Lineup, 1)
	})

	t.Run("should prefer higher quality within a position", func(t *testing.T) {
		// Setup
		team := Team{ID: 1, Name: "Deportivo Norte", Competition: "ES1"}
		better := storePlayer(1, 1, "Better Keeper", 80)
		better.Position = development.PositionGoalkeeper
		worse := storePlayer(2, 1, "Backup Keeper", 50)
		worse.Position = development.PositionGoalkeeper

		// Execute
		entry := BuildMatchEntry(team, []Player{worse, better}, matchsim.DefaultTactic(), false)

		// Assert
		require.NotEmpty(t, entry.Lineup)
		assert.Equal(t, "Better Keeper", entry.Lineup[0].Name)
	})
}
