package competition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func played(home, away int64, hg, ag int) Fixture {
	return Fixture{HomeTeamID: home, AwayTeamID: away, HomeGoals: hg, AwayGoals: ag, Played: true}
}

func TestCalculateStandings(t *testing.T) {
	t.Run("should award three for a win and one each for a draw", func(t *testing.T) {
		// Setup
		teams := []int64{1, 2, 3}
		fixtures := []Fixture{
			played(1, 2, 2, 0),
			played(2, 3, 1, 1),
		}

		// Execute
		table := CalculateStandings(teams, fixtures)

		// Assert
		require.Len(t, table, 3)
		assert.Equal(t, int64(1), table[0].TeamID)
		assert.Equal(t, 3, table[0].Points)
		assert.Equal(t, 1, table[1].Points)
		assert.Equal(t, 1, table[2].Points)
	})

	t.Run("should break level points on goal difference then goals scored", func(t *testing.T) {
		// Setup: 1 and 2 both win once; 1 by three, 2 by one.
		teams := []int64{1, 2, 3, 4}
		fixtures := []Fixture{
			played(1, 3, 3, 0),
			played(2, 4, 2, 1),
		}

		// Execute
		table := CalculateStandings(teams, fixtures)

		// Assert
		assert.Equal(t, int64(1), table[0].TeamID)
		assert.Equal(t, int64(2), table[1].TeamID)
	})

	t.Run("should keep input order for fully level teams", func(t *testing.T) {
		// Setup
		teams := []int64{7, 3, 9}

		// Execute
		table := CalculateStandings(teams, nil)

		// Assert
		require.Len(t, table, 3)
		assert.Equal(t, int64(7), table[0].TeamID)
		assert.Equal(t, int64(3), table[1].TeamID)
		assert.Equal(t, int64(9), table[2].TeamID)
		assert.Equal(t, 1, table[0].Position)
		assert.Equal(t, 3, table[2].Position)
	})

	t.Run("should ignore unplayed fixtures and unknown teams", func(t *testing.T) {
		// Setup
		teams := []int64{1, 2}
		fixtures := []Fixture{
			{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: -1, AwayGoals: -1},
			played(1, 99, 4, 0),
		}

		// Execute
		table := CalculateStandings(teams, fixtures)

		// Assert
		for _, r := range table {
			assert.Zero(t, r.Played)
			assert.Zero(t, r.Points)
		}
	})

	t.Run("should conserve points across a full season", func(t *testing.T) {
		// Setup
		teams := []int64{1, 2, 3, 4}
		fixtures, err := GenerateLeague("ES1", teams, 1)
		require.NoError(t, err)
		draws := 0
		for i := range fixtures {
			fixtures[i].Played = true
			fixtures[i].HomeGoals = i % 3
			fixtures[i].AwayGoals = (i + 1) % 2
			if fixtures[i].HomeGoals == fixtures[i].AwayGoals {
				draws++
			}
		}

		// Execute
		table := CalculateStandings(teams, fixtures)

		// Assert
		totalPoints := 0
		totalPlayed := 0
		for _, r := range table {
			totalPoints += r.Points
			totalPlayed += r.Played
		}
		assert.Equal(t, 3*len(fixtures)-draws, totalPoints)
		assert.Equal(t, 2*len(fixtures), totalPlayed)
	})
}
