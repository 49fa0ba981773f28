package matchsim

// shootoutSalt decorrelates the shootout stream from the match stream of
// the same fixture.
const shootoutSalt int64 = 0x7A4B3C2D1E0F1234

const (
	shootoutRounds        = 5
	suddenDeathCap        = 20
	conversionBase        = 0.72
	conversionFloorChance = 0.55
	conversionCeilChance  = 0.90
)

// ResolveShootout settles a drawn knockout tie from the penalty spot.
// Five rounds each, then sudden death; a capped shootout is forced to a
// winner by coin flip, so the result never ties.
func ResolveShootout(home, away TeamMatchEntry, seed int64) ShootoutResult {
	s := newStream(seed ^ shootoutSalt)

	homeChance := conversionChance(home.Lineup)
	awayChance := conversionChance(away.Lineup)

	var result ShootoutResult
	for i := 0; i < shootoutRounds; i++ {
		if s.float() < homeChance {
			result.HomeConverted++
		}
		if s.float() < awayChance {
			result.AwayConverted++
		}
	}

	rounds := 0
	for result.HomeConverted == result.AwayConverted {
		result.SuddenDeath = true
		if rounds >= suddenDeathCap {
			if s.coin() {
				result.HomeConverted++
			} else {
				result.AwayConverted++
			}
			break
		}
		if s.float() < homeChance {
			result.HomeConverted++
		}
		if s.float() < awayChance {
			result.AwayConverted++
		}
		rounds++
	}

	return result
}

// conversionChance derives a per-kick probability from the lineup's
// average of finishing, shot power and quality, clamped to [0.55, 0.90].
func conversionChance(lineup []PlayerAttributes) float64 {
	avg := neutralStrength
	if len(lineup) > 0 {
		total := 0.0
		for _, p := range lineup {
			total += (float64(p.Finishing) + float64(p.ShotPower) + float64(p.Quality)) / 3
		}
		avg = total / float64(len(lineup))
	}
	return clampFloat(conversionBase+(avg-50)/250, conversionFloorChance, conversionCeilChance)
}
