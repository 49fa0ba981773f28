package matchsim

import (
	"fmt"
	"sort"
)

// Lambda derivation constants. Strength is normalised from [10, 99] into
// [0, 1] and mapped linearly onto an expected-goals rate.
const (
	lambdaBase      = 0.29
	lambdaSpan      = 1.78
	homeLambdaBoost = 1.08
	lambdaFloor     = 0.1

	redCardLambdaPenalty = 0.8

	varReviewChance   = 0.18
	varDisallowChance = 0.38

	injuryChance       = 0.08
	directRedChance    = 0.05
	tacticalPauseOdds  = 0.22
	yellowCardRate     = 1.5
	narrationEveryMins = 3

	maxGoals = 8
)

// goalFactorByCompetition scales expected goals per league culture. The
// factor applied to a fixture is the mean of both sides' competitions,
// clamped to [0.75, 1.20]. Unknown codes score 1.0.
var goalFactorByCompetition = map[string]float64{
	"ES1": 0.93,
	"ES2": 0.81,
	"GB1": 1.08,
	"IT1": 1.02,
	"L1":  1.15,
	"FR1": 1.02,
	"NL1": 1.12,
	"PO1": 0.96,
	"BE1": 1.08,
	"TR1": 1.04,
}

var tacticalPauseMinutes = [...]int{25, 40, 55, 70, 85}

var attackNarrations = [...]string{
	"%s push players forward looking for an opening",
	"%s string passes together inside the final third",
	"A quick break from %s stretches the back line",
	"%s win a corner after a deflected cross",
	"The crowd rises as %s surge down the wing",
}

var defenceNarrations = [...]string{
	"%s drop deep and close the central lanes",
	"A vital interception keeps %s comfortable at the back",
	"%s clear their lines under pressure",
	"The %s keeper claims a dangerous ball into the box",
	"%s double up on the flanks to shut down the cross",
}

var midfieldNarrations = [...]string{
	"%s recycle possession around the centre circle",
	"Midfield scrap, %s come away with the loose ball",
	"%s slow the tempo and probe for space",
	"Neither side gives an inch through the middle, %s keep it tidy",
}

// Resolve simulates a single fixture from its seed. The same inputs
// always yield the same MatchOutcome. Set neutral for cup finals and
// other no-advantage venues.
func Resolve(home, away TeamMatchEntry, seed int64, neutral bool) MatchOutcome {
	s := newStream(seed)

	h := home
	a := away
	h.Home = !neutral
	a.Home = false

	homeStrength := TeamStrength(h)
	awayStrength := TeamStrength(a)

	var events []MatchEvent

	// Cards come first so lambdas can price in dismissals.
	cardEvents, homeReds, awayReds, yellowCount := discipline(s, h, a)
	events = append(events, cardEvents...)

	homeLambda := goalLambda(homeStrength, !neutral, homeReds)
	awayLambda := goalLambda(awayStrength, false, awayReds)
	homeLambda, awayLambda = applyPaceFactors(homeLambda, awayLambda, h.Tactic, a.Tactic)

	factor := competitionGoalFactor(h.Competition, a.Competition)
	homeLambda = maxFloat(homeLambda*factor, lambdaFloor)
	awayLambda = maxFloat(awayLambda*factor, lambdaFloor)

	homeGoals := clampInt(s.poisson(homeLambda), 0, maxGoals)
	awayGoals := clampInt(s.poisson(awayLambda), 0, maxGoals)

	events = append(events, injuries(s, h)...)
	events = append(events, injuries(s, a)...)

	wastingEvents, wastingBias := timeWasting(s, h, a)
	events = append(events, wastingEvents...)

	var varReviews, homeDisallowed, awayDisallowed int
	homeGoals, homeDisallowed, varReviews, events = applyVAR(s, h, homeGoals, varReviews, events)
	awayGoals, awayDisallowed, varReviews, events = applyVAR(s, a, awayGoals, varReviews, events)

	events = append(events, goalEvents(s, h, homeGoals)...)
	events = append(events, goalEvents(s, a, awayGoals)...)

	events = append(events, tacticalPauses(s, h, a)...)
	events = append(events, narration(s, h, a)...)

	h1, h2 := addedTime(s, yellowCount, varReviews, homeGoals+awayGoals, wastingBias)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})

	return MatchOutcome{
		HomeTeamID:        h.TeamID,
		AwayTeamID:        a.TeamID,
		HomeGoals:         homeGoals,
		AwayGoals:         awayGoals,
		HomeStrength:      homeStrength,
		AwayStrength:      awayStrength,
		VARDisallowedHome: homeDisallowed,
		VARDisallowedAway: awayDisallowed,
		Events:            events,
		AddedTimeH1:       h1,
		AddedTimeH2:       h2,
		Seed:              seed,
	}
}

// goalLambda maps a team strength onto a Poisson rate, with home
// advantage and a compounding penalty per red card.
func goalLambda(strength float64, home bool, redCards int) float64 {
	norm := (strength - strengthFloor) / (strengthCeiling - strengthFloor)
	lambda := lambdaBase + norm*lambdaSpan
	if home {
		lambda *= homeLambdaBoost
	}
	for i := 0; i < redCards; i++ {
		lambda *= redCardLambdaPenalty
	}
	return maxFloat(lambda, lambdaFloor)
}

// applyPaceFactors slows both rates when either side kills the clock.
// A single wasting side hurts its own output more than the opponent's.
func applyPaceFactors(homeLambda, awayLambda float64, homeTactic, awayTactic Tactic) (float64, float64) {
	switch {
	case homeTactic.TimeWasting && awayTactic.TimeWasting:
		return homeLambda * 0.82, awayLambda * 0.82
	case homeTactic.TimeWasting:
		return homeLambda * 0.88, awayLambda * 0.92
	case awayTactic.TimeWasting:
		return homeLambda * 0.92, awayLambda * 0.88
	default:
		return homeLambda, awayLambda
	}
}

func competitionGoalFactor(homeComp, awayComp string) float64 {
	f := (lookupGoalFactor(homeComp) + lookupGoalFactor(awayComp)) / 2
	return clampFloat(f, 0.75, 1.20)
}

func lookupGoalFactor(comp string) float64 {
	if f, ok := goalFactorByCompetition[comp]; ok {
		return f
	}
	return 1.0
}

// discipline samples the card timeline. Booking counts per team are
// Poisson draws; a second yellow to the same player converts to a red in
// the same minute, and hard-foul tactics risk a straight red per side.
func discipline(s *stream, home, away TeamMatchEntry) (events []MatchEvent, homeReds, awayReds, yellows int) {
	bookings := s.poisson(yellowCardRate) + s.poisson(yellowCardRate)

	type side struct {
		entry     TeamMatchEntry
		yellowFor map[int]int
		dismissed map[int]bool
		reds      *int
	}
	hs := side{entry: home, yellowFor: map[int]int{}, dismissed: map[int]bool{}, reds: &homeReds}
	as := side{entry: away, yellowFor: map[int]int{}, dismissed: map[int]bool{}, reds: &awayReds}

	for i := 0; i < bookings; i++ {
		target := hs
		if s.coin() {
			target = as
		}
		slot := eligibleSlot(s, target.entry.Lineup, target.dismissed)
		if slot < 0 {
			continue
		}
		minute := s.between(1, 90)
		p := target.entry.Lineup[slot]
		events = append(events, MatchEvent{
			Minute:      minute,
			Kind:        EventYellowCard,
			TeamID:      target.entry.TeamID,
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Description: fmt.Sprintf("%s is booked", p.Name),
		})
		yellows++
		target.yellowFor[slot]++
		if target.yellowFor[slot] >= 2 {
			target.dismissed[slot] = true
			*target.reds++
			events = append(events,
				MatchEvent{
					Minute:      minute,
					Kind:        EventRedCard,
					TeamID:      target.entry.TeamID,
					PlayerID:    p.ID,
					PlayerName:  p.Name,
					Description: fmt.Sprintf("%s sees a second yellow and is sent off", p.Name),
				},
				MatchEvent{
					Minute:      minute,
					Kind:        EventDisciplineStoppage,
					TeamID:      target.entry.TeamID,
					Description: "Play is held up while the dismissal is sorted out",
				},
			)
		}
	}

	for _, sd := range []side{hs, as} {
		if sd.entry.Tactic.Fouls != FoulsHard {
			continue
		}
		if s.float() >= directRedChance {
			continue
		}
		slot := eligibleSlot(s, sd.entry.Lineup, sd.dismissed)
		if slot < 0 {
			continue
		}
		minute := s.between(15, 90)
		p := sd.entry.Lineup[slot]
		sd.dismissed[slot] = true
		*sd.reds++
		events = append(events,
			MatchEvent{
				Minute:      minute,
				Kind:        EventRedCard,
				TeamID:      sd.entry.TeamID,
				PlayerID:    p.ID,
				PlayerName:  p.Name,
				Description: fmt.Sprintf("%s is shown a straight red for a reckless challenge", p.Name),
			},
			MatchEvent{
				Minute:      minute,
				Kind:        EventDisciplineStoppage,
				TeamID:      sd.entry.TeamID,
				Description: "Play is held up while the dismissal is sorted out",
			},
		)
	}

	return events, homeReds, awayReds, yellows
}

// eligibleSlot picks a random lineup slot whose player is still on the
// pitch, or -1 if none remain.
func eligibleSlot(s *stream, lineup []PlayerAttributes, dismissed map[int]bool) int {
	if len(lineup) == 0 {
		return -1
	}
	var candidates []int
	for i := range lineup {
		if !dismissed[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[s.intn(len(candidates))]
}

func injuries(s *stream, entry TeamMatchEntry) []MatchEvent {
	if len(entry.Lineup) == 0 {
		return nil
	}
	if s.float() >= injuryChance {
		return nil
	}
	p := entry.Lineup[s.intn(len(entry.Lineup))]
	weeks := s.between(2, 8)
	return []MatchEvent{{
		Minute:      s.between(1, 90),
		Kind:        EventInjury,
		TeamID:      entry.TeamID,
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		InjuryWeeks: weeks,
		Description: fmt.Sprintf("%s goes down injured and will miss around %d weeks", p.Name, weeks),
	}}
}

// timeWasting emits late-game stalling events for each wasting side and
// returns the added-time bias those antics earn, clamped to [0, 4].
func timeWasting(s *stream, home, away TeamMatchEntry) ([]MatchEvent, int) {
	var events []MatchEvent
	bias := 0
	for _, entry := range []TeamMatchEntry{home, away} {
		if !entry.Tactic.TimeWasting {
			continue
		}
		count := s.between(1, 3)
		for i := 0; i < count; i++ {
			events = append(events, MatchEvent{
				Minute:      s.between(70, 93),
				Kind:        EventTimeWasting,
				TeamID:      entry.TeamID,
				Description: fmt.Sprintf("%s take their time over the restart", entry.Name),
			})
		}
		bias += 1 + s.intn(2)
	}
	return events, clampInt(bias, 0, 4)
}

// applyVAR reviews each raw goal independently and may strike it off,
// emitting a review event and, one minute later, the disallowal. It
// returns the kept goal count, the side's disallowed count, and the
// running review total.
func applyVAR(s *stream, entry TeamMatchEntry, goals, reviews int, events []MatchEvent) (int, int, int, []MatchEvent) {
	kept := goals
	disallowed := 0
	for i := 0; i < goals; i++ {
		if s.float() >= varReviewChance {
			continue
		}
		reviews++
		minute := s.between(1, 90)
		events = append(events, MatchEvent{
			Minute:      minute,
			Kind:        EventVARReview,
			TeamID:      entry.TeamID,
			Description: "The referee is called to the monitor",
		})
		if s.float() >= varDisallowChance {
			continue
		}
		kept--
		disallowed++
		ev := MatchEvent{
			Minute:      clampInt(minute+1, 1, 90),
			Kind:        EventVARDisallowed,
			TeamID:      entry.TeamID,
			Description: fmt.Sprintf("Goal for %s ruled out after review", entry.Name),
		}
		if len(entry.Lineup) > 0 {
			p := entry.Lineup[s.intn(len(entry.Lineup))]
			ev.PlayerID = p.ID
			ev.PlayerName = p.Name
			ev.Description = fmt.Sprintf("Goal by %s ruled out after review", p.Name)
		}
		events = append(events, ev)
	}
	return kept, disallowed, reviews, events
}

func goalEvents(s *stream, entry TeamMatchEntry, goals int) []MatchEvent {
	var events []MatchEvent
	for i := 0; i < goals; i++ {
		ev := MatchEvent{
			Minute:      s.between(1, 90),
			Kind:        EventGoal,
			TeamID:      entry.TeamID,
			Description: fmt.Sprintf("Goal for %s", entry.Name),
		}
		if len(entry.Lineup) > 0 {
			p := entry.Lineup[s.intn(len(entry.Lineup))]
			ev.PlayerID = p.ID
			ev.PlayerName = p.Name
			ev.Description = fmt.Sprintf("%s scores for %s", p.Name, entry.Name)
		}
		events = append(events, ev)
	}
	return events
}

func tacticalPauses(s *stream, home, away TeamMatchEntry) []MatchEvent {
	var events []MatchEvent
	for _, minute := range tacticalPauseMinutes {
		if s.float() >= tacticalPauseOdds {
			continue
		}
		entry := home
		if s.coin() {
			entry = away
		}
		desc := fmt.Sprintf("%s's bench gathers the players to reshape the block", entry.Name)
		if entry.Tactic.Style == StyleAttacking {
			desc = fmt.Sprintf("%s's bench pushes the lines higher up the pitch", entry.Name)
		}
		events = append(events, MatchEvent{
			Minute:      minute,
			Kind:        EventTacticalPause,
			TeamID:      entry.TeamID,
			Description: desc,
		})
	}
	return events
}

// narration produces a flavor line every few minutes, leaning toward
// attacking or defensive phrasing depending on which side the draw
// favours.
func narration(s *stream, home, away TeamMatchEntry) []MatchEvent {
	var events []MatchEvent
	for minute := narrationEveryMins; minute <= 90; minute += narrationEveryMins {
		entry := home
		if s.coin() {
			entry = away
		}
		var template string
		switch s.intn(3) {
		case 0:
			template = attackNarrations[s.intn(len(attackNarrations))]
		case 1:
			template = defenceNarrations[s.intn(len(defenceNarrations))]
		default:
			template = midfieldNarrations[s.intn(len(midfieldNarrations))]
		}
		events = append(events, MatchEvent{
			Minute:      minute,
			Kind:        EventNarration,
			TeamID:      entry.TeamID,
			Description: fmt.Sprintf(template, entry.Name),
		})
	}
	return events
}

// addedTime derives stoppage minutes for each half from the match's
// disruption load. First half lands in [1, 6], second in [2, 10].
func addedTime(s *stream, yellows, varReviews, totalGoals, wastingBias int) (int, int) {
	base := yellows/3 + varReviews + totalGoals/3 + wastingBias
	h1 := clampInt(base/2+s.between(1, 3), 1, 6)
	h2 := clampInt(base/2+s.between(2, 5), 2, 10)
	return h1, h2
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
