package development

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ligasim/internal/matchsim"
)

func makePlayer(id int64, birthYear int) Player {
	return Player{
		PlayerAttributes: matchsim.PlayerAttributes{
			ID:          id,
			Name:        fmt.Sprintf("Player %d", id),
			Speed:       60,
			Stamina:     60,
			Aggression:  55,
			Quality:     62,
			Finishing:   58,
			Dribbling:   57,
			Passing:     61,
			ShotPower:   59,
			Tackling:    56,
			Goalkeeping: 10,
			Form:        50,
			Morale:      50,
		},
		Position:  PositionMidfielder,
		BirthYear: birthYear,
		Status:    StatusActive,
	}
}

func TestApplySeasonGrowth(t *testing.T) {
	const seasonYear = 2026

	t.Run("should retire players at the hard age limit", func(t *testing.T) {
		// Setup
		roster := []Player{makePlayer(1, seasonYear-37)}

		// Execute
		out := ApplySeasonGrowth(roster, seasonYear, 7, DefaultContext())

		// Assert
		require.Len(t, out, 1)
		assert.Equal(t, StatusRetired, out[0].Status)
	})

	t.Run("should retire slow players from thirty-five", func(t *testing.T) {
		// Setup
		slow := makePlayer(1, seasonYear-35)
		slow.Speed = 30
		quick := makePlayer(2, seasonYear-35)
		quick.Speed = 31

		// Execute
		out := ApplySeasonGrowth([]Player{slow, quick}, seasonYear, 7, DefaultContext())

		// Assert
		assert.Equal(t, StatusRetired, out[0].Status)
		assert.Equal(t, StatusActive, out[1].Status)
	})

	t.Run("should freeze a retiring player's attributes", func(t *testing.T) {
		// Setup
		p := makePlayer(1, seasonYear-38)

		// Execute
		out := ApplySeasonGrowth([]Player{p}, seasonYear, 7, DefaultContext())

		// Assert
		assert.Equal(t, p.PlayerAttributes, out[0].PlayerAttributes)
	})

	t.Run("should pass already retired players through untouched", func(t *testing.T) {
		// Setup
		p := makePlayer(1, seasonYear-22)
		p.Status = StatusRetired

		// Execute
		out := ApplySeasonGrowth([]Player{p}, seasonYear, 7, DefaultContext())

		// Assert
		assert.Equal(t, p, out[0])
	})

	t.Run("should never retroactively unretire anyone", func(t *testing.T) {
		// Setup
		roster := []Player{makePlayer(1, seasonYear-37), makePlayer(2, seasonYear-30)}
		out := ApplySeasonGrowth(roster, seasonYear, 7, DefaultContext())

		// Execute: run a second season over the evolved roster.
		again := ApplySeasonGrowth(out, seasonYear+1, 8, DefaultContext())

		// Assert
		assert.Equal(t, StatusRetired, again[0].Status)
	})

	t.Run("should improve young players and never regress them", func(t *testing.T) {
		// Setup
		young := makePlayer(1, seasonYear-19)

		// Execute & Assert
		for seed := int64(0); seed < 50; seed++ {
			out := ApplySeasonGrowth([]Player{young}, seasonYear, seed, DefaultContext())
			evolved := out[0]
			total := func(p Player) int {
				return p.Speed + p.Stamina + p.Aggression + p.Quality + p.Finishing +
					p.Dribbling + p.Passing + p.ShotPower + p.Tackling + p.Goalkeeping
			}
			assert.Greater(t, total(evolved), total(young), "seed %d", seed)
		}
	})

	t.Run("should erode veteran speed and stamina", func(t *testing.T) {
		// Setup
		veteran := makePlayer(1, seasonYear-33)

		// Execute
		out := ApplySeasonGrowth([]Player{veteran}, seasonYear, 7, DefaultContext())

		// Assert
		assert.Less(t, out[0].Speed, veteran.Speed)
		assert.Less(t, out[0].Stamina, veteran.Stamina)
	})

	t.Run("should soften decline with an elite physio", func(t *testing.T) {
		// Setup
		veteran := makePlayer(1, seasonYear-36)
		plain := DefaultContext()
		pampered := DefaultContext()
		pampered.Staff.Physio = 90

		// Execute
		hard := ApplySeasonGrowth([]Player{veteran}, seasonYear, 7, plain)
		soft := ApplySeasonGrowth([]Player{veteran}, seasonYear, 7, pampered)

		// Assert
		assert.GreaterOrEqual(t, soft[0].Speed, hard[0].Speed)
	})

	t.Run("should keep every attribute inside its bounds", func(t *testing.T) {
		// Setup
		roster := []Player{
			makePlayer(1, seasonYear-18),
			makePlayer(2, seasonYear-27),
			makePlayer(3, seasonYear-34),
		}
		roster[0].Quality = 98
		roster[2].Speed = 2
		roster[2].Stamina = 1
		ctx := DefaultContext()
		ctx.Training.Intensity = IntensityHigh

		// Execute & Assert
		for seed := int64(0); seed < 50; seed++ {
			for _, p := range ApplySeasonGrowth(roster, seasonYear, seed, ctx) {
				for _, v := range []int{p.Speed, p.Stamina, p.Aggression, p.Quality, p.Finishing, p.Dribbling, p.Passing, p.ShotPower, p.Tackling, p.Goalkeeping} {
					assert.GreaterOrEqual(t, v, 0)
					assert.LessOrEqual(t, v, 99)
				}
			}
		}
	})

	t.Run("should evolve a player the same way regardless of roster order", func(t *testing.T) {
		// Setup
		a := makePlayer(1, seasonYear-20)
		b := makePlayer(2, seasonYear-26)

		// Execute
		forward := ApplySeasonGrowth([]Player{a, b}, seasonYear, 42, DefaultContext())
		backward := ApplySeasonGrowth([]Player{b, a}, seasonYear, 42, DefaultContext())

		// Assert
		assert.Equal(t, forward[0], backward[1])
		assert.Equal(t, forward[1], backward[0])
	})

	t.Run("should be deterministic for the same seed", func(t *testing.T) {
		// Setup
		roster := []Player{makePlayer(1, seasonYear-20), makePlayer(2, seasonYear-32)}

		// Execute & Assert
		assert.Equal(t,
			ApplySeasonGrowth(roster, seasonYear, 42, DefaultContext()),
			ApplySeasonGrowth(roster, seasonYear, 42, DefaultContext()),
		)
	})
}

func TestGenerateYouthPlayers(t *testing.T) {
	const seasonYear = 2026

	t.Run("should mint the requested number of prospects", func(t *testing.T) {
		// Execute
		players := GenerateYouthPlayers(5, 3, seasonYear, 42, DefaultContext())

		// Assert
		assert.Len(t, players, 3)
	})

	t.Run("should produce teenagers with bounded attributes", func(t *testing.T) {
		// Execute & Assert
		for seed := int64(0); seed < 30; seed++ {
			for _, p := range GenerateYouthPlayers(5, 3, seasonYear, seed, DefaultContext()) {
				age := p.Age(seasonYear)
				assert.GreaterOrEqual(t, age, 16)
				assert.LessOrEqual(t, age, 18)
				assert.Equal(t, StatusActive, p.Status)
				assert.NotEmpty(t, p.Name)
				for _, v := range []int{p.Speed, p.Stamina, p.Aggression, p.Quality, p.Finishing, p.Dribbling, p.Passing, p.ShotPower, p.Tackling, p.Goalkeeping} {
					assert.GreaterOrEqual(t, v, 0)
					assert.LessOrEqual(t, v, 99)
				}
			}
		}
	})

	t.Run("should suppress outfield skills for goalkeeper prospects", func(t *testing.T) {
		// Execute & Assert
		for seed := int64(0); seed < 100; seed++ {
			for _, p := range GenerateYouthPlayers(5, 3, seasonYear, seed, DefaultContext()) {
				if p.Position == PositionGoalkeeper {
					assert.GreaterOrEqual(t, p.Goalkeeping, 35)
					assert.LessOrEqual(t, p.Finishing, 35)
				} else {
					assert.Zero(t, p.Goalkeeping)
				}
			}
		}
	})

	t.Run("should be deterministic per team seed", func(t *testing.T) {
		// Execute & Assert
		assert.Equal(t,
			GenerateYouthPlayers(5, 2, seasonYear, 42, DefaultContext()),
			GenerateYouthPlayers(5, 2, seasonYear, 42, DefaultContext()),
		)
	})

	t.Run("should size the intake from the academy staff", func(t *testing.T) {
		// Setup
		elite := DefaultContext()
		elite.Staff.YouthCoach = 90
		elite.Staff.Scout = 75

		// Execute & Assert
		assert.Equal(t, 2, YouthIntakeSize(DefaultContext()))
		assert.Equal(t, 3, YouthIntakeSize(elite))
	})
}
