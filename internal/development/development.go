package development

import (
	"fmt"
	"math/rand"
	"sort"
)

// attrKey names one trainable attribute.
type attrKey int

const (
	attrSpeed attrKey = iota
	attrStamina
	attrAggression
	attrQuality
	attrFinishing
	attrDribbling
	attrPassing
	attrShotPower
	attrTackling
	attrGoalkeeping
)

// allAttrs is the canonical ordering used for weakest-first scans and
// pool backfills.
var allAttrs = [...]attrKey{
	attrSpeed, attrStamina, attrAggression, attrQuality, attrFinishing,
	attrDribbling, attrPassing, attrShotPower, attrTackling, attrGoalkeeping,
}

func (p *Player) attr(key attrKey) int {
	switch key {
	case attrSpeed:
		return p.Speed
	case attrStamina:
		return p.Stamina
	case attrAggression:
		return p.Aggression
	case attrQuality:
		return p.Quality
	case attrFinishing:
		return p.Finishing
	case attrDribbling:
		return p.Dribbling
	case attrPassing:
		return p.Passing
	case attrShotPower:
		return p.ShotPower
	case attrTackling:
		return p.Tackling
	default:
		return p.Goalkeeping
	}
}

func (p *Player) addAttr(key attrKey, delta int) {
	set := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 99 {
			return 99
		}
		return v
	}
	switch key {
	case attrSpeed:
		p.Speed = set(p.Speed + delta)
	case attrStamina:
		p.Stamina = set(p.Stamina + delta)
	case attrAggression:
		p.Aggression = set(p.Aggression + delta)
	case attrQuality:
		p.Quality = set(p.Quality + delta)
	case attrFinishing:
		p.Finishing = set(p.Finishing + delta)
	case attrDribbling:
		p.Dribbling = set(p.Dribbling + delta)
	case attrPassing:
		p.Passing = set(p.Passing + delta)
	case attrShotPower:
		p.ShotPower = set(p.ShotPower + delta)
	case attrTackling:
		p.Tackling = set(p.Tackling + delta)
	case attrGoalkeeping:
		p.Goalkeeping = set(p.Goalkeeping + delta)
	}
}

// playerSeed derives the per-player stream from the season seed so a
// player evolves the same way regardless of roster ordering.
func playerSeed(seasonSeed, playerID int64) int64 {
	return seasonSeed ^ (playerID * 31)
}

func youthSeed(seasonSeed, teamID int64) int64 {
	return seasonSeed ^ (teamID * 13)
}

// ApplySeasonGrowth runs one off-season over a roster and returns the
// evolved copy. Retirement happens before any attribute change, so a
// retiring player's sheet is frozen as it stood. Already retired players
// pass through untouched.
func ApplySeasonGrowth(roster []Player, seasonYear int, seasonSeed int64, ctx Context) []Player {
	out := make([]Player, len(roster))
	for i, p := range roster {
		out[i] = developPlayer(p, seasonYear, seasonSeed, ctx)
	}
	return out
}

func developPlayer(p Player, seasonYear int, seasonSeed int64, ctx Context) Player {
	if p.Status == StatusRetired {
		return p
	}

	age := p.Age(seasonYear)
	if age >= 37 || (age >= 35 && p.Speed <= 30) {
		p.Status = StatusRetired
		return p
	}

	rng := rand.New(rand.NewSource(playerSeed(seasonSeed, p.ID)))
	switch {
	case age < 24:
		growYoungPlayer(&p, age, rng, ctx)
	case age >= 31:
		declineVeteran(&p, age, rng, ctx)
	default:
		driftPrimePlayer(&p, rng, ctx)
	}
	return p
}

// growYoungPlayer improves a youngster's weakest attributes plus a few
// focus-weighted extras. Gains run 1-4 points per attribute.
func growYoungPlayer(p *Player, age int, rng *rand.Rand, ctx Context) {
	baseCount := 1 + rng.Intn(3)
	adjust := 0
	switch {
	case ctx.Training.Intensity == IntensityHigh:
		adjust = 1
	case ctx.Training.Intensity == IntensityLow && baseCount > 1 && rng.Float64() < 0.40:
		adjust = -1
	}
	if age <= 21 && ctx.Staff.AssistantCoach >= 70 {
		adjust++
	}
	improveCount := clamp(baseCount+adjust, 1, 5)

	weakest := make([]attrKey, len(allAttrs))
	copy(weakest, allAttrs[:])
	sort.SliceStable(weakest, func(i, j int) bool {
		return p.attr(weakest[i]) < p.attr(weakest[j])
	})

	targets := make([]attrKey, 0, improveCount)
	seen := map[attrKey]bool{}
	for _, key := range weakest[:improveCount] {
		if !seen[key] {
			targets = append(targets, key)
			seen[key] = true
		}
	}
	pool := focusPool(ctx.Training.Focus, p.Position == PositionGoalkeeper)
	for _, key := range pickUniqueAttrs(rng, pool, improveCount+1) {
		if len(targets) >= improveCount {
			break
		}
		if !seen[key] {
			targets = append(targets, key)
			seen[key] = true
		}
	}

	for _, key := range targets[:minInt(improveCount, len(targets))] {
		bonus := 0
		switch ctx.Training.Intensity {
		case IntensityHigh:
			if rng.Float64() < 0.55 {
				bonus++
			}
		case IntensityMedium:
			if rng.Float64() < 0.20 {
				bonus++
			}
		}
		if ctx.Staff.AssistantCoach >= 75 && rng.Float64() < 0.35 {
			bonus++
		}
		inc := 1 + rng.Intn(3) + bonus
		if inc > 4 {
			inc = 4
		}
		p.addAttr(key, inc)
	}
}

// driftPrimePlayer applies small random drift to a handful of
// attributes, amplified toward the training focus and dampened on the
// downside by a strong assistant coach.
func driftPrimePlayer(p *Player, rng *rand.Rand, ctx Context) {
	adjustCount := rng.Intn(3)
	switch {
	case ctx.Training.Intensity == IntensityHigh && rng.Float64() < 0.35:
		adjustCount = clamp(adjustCount+1, 0, 3)
	case ctx.Training.Intensity == IntensityLow && adjustCount > 0 && rng.Float64() < 0.35:
		adjustCount--
	}

	pool := focusPool(ctx.Training.Focus, p.Position == PositionGoalkeeper)
	inFocus := map[attrKey]bool{}
	for _, key := range pool {
		inFocus[key] = true
	}

	for _, key := range pickUniqueAttrs(rng, pool, adjustCount) {
		delta := rng.Intn(3) - 1
		if delta > 0 && ctx.Training.Focus != FocusBalanced && inFocus[key] && rng.Float64() < 0.45 {
			delta++
		}
		if delta < 0 && ctx.Staff.AssistantCoach >= 75 && rng.Float64() < 0.40 {
			delta++
		}
		p.addAttr(key, delta)
	}
}

// declineVeteran erodes speed and stamina, with the rate shaped by age,
// training load and medical staff.
func declineVeteran(p *Player, age int, rng *rand.Rand, ctx Context) {
	decline := 1
	if age >= 34 {
		decline = 2
	}
	if ctx.Training.Intensity == IntensityHigh && age >= 33 {
		decline++
	}
	if ctx.Staff.Physio >= 85 {
		decline--
	} else if ctx.Staff.Physio >= 65 && age >= 34 {
		decline--
	}
	if decline < 0 {
		decline = 0
	}
	if decline > 0 {
		p.addAttr(attrSpeed, -decline)
		p.addAttr(attrStamina, -decline)
		if ctx.Training.Intensity == IntensityHigh && ctx.Staff.Physio < 40 && age >= 34 && rng.Float64() < 0.35 {
			p.addAttr(attrAggression, -1)
		}
	}
}

// GenerateYouthPlayers mints academy prospects for a team. Prospect
// quality rides on the scout and youth coach ratings; a stronger
// assistant coach makes the intake more consistent. IDs are left zero
// for the store to assign.
func GenerateYouthPlayers(teamID int64, count, seasonYear int, seasonSeed int64, ctx Context) []Player {
	rng := rand.New(rand.NewSource(youthSeed(seasonSeed, teamID)))

	floorBonus := ctx.Staff.YouthCoach/20 + ctx.Staff.Scout/30
	if floorBonus > 6 {
		floorBonus = 6
	}
	consistency := ctx.Staff.AssistantCoach / 30
	if consistency > 3 {
		consistency = 3
	}

	players := make([]Player, 0, count)
	for i := 0; i < count; i++ {
		position := pickYouthPosition(rng, ctx.Staff.Scout)
		gk := position == PositionGoalkeeper

		p := Player{
			Position:  position,
			BirthYear: seasonYear - (16 + rng.Intn(3)),
			Status:    StatusActive,
		}
		p.Name = fmt.Sprintf("Youth %d", 100+rng.Intn(900))
		p.Form = 50
		p.Morale = 50

		p.Speed = sampleAttr(rng, 35, 50, floorBonus, consistency)
		p.Stamina = sampleAttr(rng, 35, 50, floorBonus, consistency)
		p.Aggression = sampleAttr(rng, 30, 55, maxInt(0, floorBonus-1), consistency)
		p.Quality = sampleAttr(rng, 35, 55, floorBonus, consistency)
		p.Finishing = sampleOutfield(rng, gk, 5, 25, 20, 45, maxInt(0, floorBonus-2), floorBonus, consistency)
		p.Dribbling = sampleOutfield(rng, gk, 5, 25, 20, 45, maxInt(0, floorBonus-2), floorBonus, consistency)
		p.Passing = sampleOutfield(rng, gk, 10, 30, 25, 50, maxInt(0, floorBonus-1), floorBonus, consistency)
		p.ShotPower = sampleOutfield(rng, gk, 5, 20, 20, 45, maxInt(0, floorBonus-2), floorBonus, consistency)
		p.Tackling = sampleOutfield(rng, gk, 10, 30, 25, 50, maxInt(0, floorBonus-1), floorBonus, consistency)
		if gk {
			p.Goalkeeping = sampleAttr(rng, 35, 55, floorBonus, consistency)
		}

		players = append(players, p)
	}
	return players
}

// YouthIntakeSize is how many prospects an academy produces per season.
// An elite youth setup backed by a strong scout yields one extra.
func YouthIntakeSize(ctx Context) int {
	if ctx.Staff.YouthCoach >= 85 && ctx.Staff.Scout >= 70 {
		return 3
	}
	return 2
}

// pickYouthPosition rolls a position with midfield as the fattest band.
// Better scouts shave the goalkeeper and defender bands slightly.
func pickYouthPosition(rng *rand.Rand, scout int) Position {
	roll := rng.Intn(100)
	switch {
	case scout >= 80:
		switch {
		case roll < 9:
			return PositionGoalkeeper
		case roll < 35:
			return PositionDefender
		case roll < 70:
			return PositionMidfielder
		default:
			return PositionForward
		}
	case scout >= 60:
		switch {
		case roll < 10:
			return PositionGoalkeeper
		case roll < 36:
			return PositionDefender
		case roll < 72:
			return PositionMidfielder
		default:
			return PositionForward
		}
	default:
		switch {
		case roll < 12:
			return PositionGoalkeeper
		case roll < 40:
			return PositionDefender
		case roll < 73:
			return PositionMidfielder
		default:
			return PositionForward
		}
	}
}

// sampleAttr draws in [min+floorBonus, max+floorBonus] and averages in
// extra draws per consistency point to pull values toward the middle.
func sampleAttr(rng *rand.Rand, minimum, maximum, floorBonus, consistency int) int {
	low := minInt(maximum, minimum+floorBonus)
	high := maxInt(low, maximum+floorBonus)
	value := low + rng.Intn(high-low+1)
	for i := 0; i < consistency; i++ {
		value = (value + low + rng.Intn(high-low+1)) / 2
	}
	return clamp(value, 0, 99)
}

func sampleOutfield(rng *rand.Rand, gk bool, gkMin, gkMax, outMin, outMax, gkBonus, outBonus, consistency int) int {
	if gk {
		return sampleAttr(rng, gkMin, gkMax, gkBonus, consistency)
	}
	return sampleAttr(rng, outMin, outMax, outBonus, consistency)
}

// focusPool returns the attribute pool a training focus draws from,
// with the focused attributes repeated to weight the picks.
func focusPool(focus TrainingFocus, goalkeeper bool) []attrKey {
	if goalkeeper {
		base := []attrKey{attrGoalkeeping, attrStamina, attrAggression, attrQuality, attrPassing, attrSpeed}
		switch focus {
		case FocusPhysical:
			return append(base, attrStamina, attrAggression, attrSpeed, attrStamina)
		case FocusDefensive:
			return append(base, attrTackling, attrStamina, attrAggression)
		case FocusTechnical:
			return append(base, attrPassing, attrQuality, attrGoalkeeping, attrPassing)
		case FocusAttacking:
			return append(base, attrQuality, attrPassing)
		default:
			return base
		}
	}

	base := []attrKey{attrSpeed, attrStamina, attrAggression, attrQuality, attrFinishing, attrDribbling, attrPassing, attrShotPower, attrTackling}
	switch focus {
	case FocusPhysical:
		return append(base, attrSpeed, attrStamina, attrAggression, attrSpeed, attrStamina)
	case FocusDefensive:
		return append(base, attrTackling, attrStamina, attrAggression, attrTackling)
	case FocusTechnical:
		return append(base, attrPassing, attrDribbling, attrQuality, attrPassing)
	case FocusAttacking:
		return append(base, attrFinishing, attrShotPower, attrDribbling, attrFinishing)
	default:
		return base
	}
}

// pickUniqueAttrs samples distinct keys from a weighted pool, backfilling
// from the canonical order if the draws keep colliding.
func pickUniqueAttrs(rng *rand.Rand, pool []attrKey, count int) []attrKey {
	if count <= 0 || len(pool) == 0 {
		return nil
	}
	var unique []attrKey
	seen := map[attrKey]bool{}
	maxAttempts := maxInt(8, count*8)
	for attempts := 0; len(unique) < count && attempts < maxAttempts; attempts++ {
		key := pool[rng.Intn(len(pool))]
		if !seen[key] {
			unique = append(unique, key)
			seen[key] = true
		}
	}
	if len(unique) < count {
		for _, key := range allAttrs {
			if !seen[key] {
				unique = append(unique, key)
				seen[key] = true
				if len(unique) >= count {
					break
				}
			}
		}
	}
	if len(unique) > count {
		unique = unique[:count]
	}
	return unique
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
