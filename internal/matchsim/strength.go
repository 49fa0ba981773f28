package matchsim

// Positional group weights for the blended team score.
const (
	weightGoalkeeper = 0.15
	weightDefence    = 0.30
	weightMidfield   = 0.30
	weightForwards   = 0.25
)

const (
	strengthFloor   = 10.0
	strengthCeiling = 99.0
	neutralStrength = 50.0
)

// TeamStrength collapses a lineup plus tactic into a single scalar in
// [10, 99]. An empty lineup scores a flat 50 so a walkover side still
// produces a sane lambda downstream.
func TeamStrength(entry TeamMatchEntry) float64 {
	if len(entry.Lineup) == 0 {
		return neutralStrength
	}

	gk := groupScore(slice(entry.Lineup, 0, 1), goalkeeperScore)
	df := groupScore(slice(entry.Lineup, 1, 5), defenderScore)
	mf := groupScore(slice(entry.Lineup, 5, 9), midfielderScore)
	fw := groupScore(slice(entry.Lineup, 9, 11), forwardScore)

	base := gk*weightGoalkeeper + df*weightDefence + mf*weightMidfield + fw*weightForwards
	base += tacticAdjustment(entry.Tactic, entry.Home)
	base += runtimeBonus(entry.Lineup)

	return clampFloat(base, strengthFloor, strengthCeiling)
}

func formBonus(p PlayerAttributes) float64 {
	return float64(p.Form-50) * 0.05
}

func goalkeeperScore(p PlayerAttributes) float64 {
	return float64(p.Goalkeeping)*0.6 + float64(p.Stamina)*0.2 + float64(p.Quality)*0.2 + formBonus(p)
}

func defenderScore(p PlayerAttributes) float64 {
	return float64(p.Tackling)*0.4 + float64(p.Quality)*0.3 + float64(p.Speed)*0.2 + float64(p.Stamina)*0.1 + formBonus(p)
}

func midfielderScore(p PlayerAttributes) float64 {
	return float64(p.Passing)*0.35 + float64(p.Quality)*0.30 + float64(p.Stamina)*0.20 + float64(p.ShotPower)*0.15 + formBonus(p)
}

func forwardScore(p PlayerAttributes) float64 {
	return float64(p.Finishing)*0.40 + float64(p.Dribbling)*0.25 + float64(p.Quality)*0.20 + float64(p.ShotPower)*0.15 + formBonus(p)
}

// groupScore averages a scoring function over a positional group,
// falling back to the neutral midpoint when the group is empty.
func groupScore(players []PlayerAttributes, score func(PlayerAttributes) float64) float64 {
	if len(players) == 0 {
		return neutralStrength
	}
	total := 0.0
	for _, p := range players {
		total += score(p)
	}
	return total / float64(len(players))
}

// slice is a bounds-safe Lineup[lo:hi].
func slice(lineup []PlayerAttributes, lo, hi int) []PlayerAttributes {
	if lo >= len(lineup) {
		return nil
	}
	if hi > len(lineup) {
		hi = len(lineup)
	}
	return lineup[lo:hi]
}

func tacticAdjustment(t Tactic, home bool) float64 {
	adj := 0.0
	if home {
		adj += 3.0
	}
	switch t.Style {
	case StyleAttacking:
		adj += 1.5
	case StyleDefensive:
		adj -= 1.0
	}
	switch t.Pressing {
	case PressingHigh:
		adj += 1.0
	case PressingLow:
		adj -= 0.5
	}
	if t.Marking == MarkingMan {
		adj += 0.3
	}
	if t.Fouls == FoulsHard {
		adj += 0.2
	}
	if t.CounterBias > 60 {
		adj += 0.3
	}
	if t.Clearances == ClearanceControlled {
		adj += 0.2
	}
	if t.TimeWasting {
		adj -= 0.4
	}
	return adj
}

// runtimeBonus averages each player's form and morale drift around the
// neutral midpoint of 50.
func runtimeBonus(lineup []PlayerAttributes) float64 {
	if len(lineup) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range lineup {
		total += float64(p.Form-50)*0.02 + float64(p.Morale-50)/100.0*2.0
	}
	return total / float64(len(lineup))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
