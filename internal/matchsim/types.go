package matchsim

// PlayerAttributes is the flat skill sheet the simulator reads for one
// player. All scalars live in [0, 99]; Form and Morale are [0, 100] with 50
// as the neutral midpoint.
type PlayerAttributes struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Speed       int    `json:"speed"`
	Stamina     int    `json:"stamina"`
	Aggression  int    `json:"aggression"`
	Quality     int    `json:"quality"`
	Finishing   int    `json:"finishing"`
	Dribbling   int    `json:"dribbling"`
	Passing     int    `json:"passing"`
	ShotPower   int    `json:"shot_power"`
	Tackling    int    `json:"tackling"`
	Goalkeeping int    `json:"goalkeeping"`
	Form        int    `json:"form"`
	Morale      int    `json:"morale"`
}

type PlayStyle string

const (
	StyleDefensive PlayStyle = "DEFENSIVE"
	StyleBalanced  PlayStyle = "BALANCED"
	StyleAttacking PlayStyle = "ATTACKING"
)

type MarkingScheme string

const (
	MarkingZonal MarkingScheme = "ZONAL"
	MarkingMan   MarkingScheme = "MAN"
)

type PressingIntensity string

const (
	PressingLow    PressingIntensity = "LOW"
	PressingNormal PressingIntensity = "NORMAL"
	PressingHigh   PressingIntensity = "HIGH"
)

type ClearanceStyle string

const (
	ClearanceLong       ClearanceStyle = "LONG"
	ClearanceControlled ClearanceStyle = "CONTROLLED"
)

type FoulAggression string

const (
	FoulsSoft   FoulAggression = "SOFT"
	FoulsNormal FoulAggression = "NORMAL"
	FoulsHard   FoulAggression = "HARD"
)

// Tactic is the coach-level configuration a team carries into a match.
// CounterAttackBias is a percentage in [0, 100].
type Tactic struct {
	Style       PlayStyle         `json:"style"`
	Marking     MarkingScheme     `json:"marking"`
	Pressing    PressingIntensity `json:"pressing"`
	Clearances  ClearanceStyle    `json:"clearances"`
	Fouls       FoulAggression    `json:"fouls"`
	CounterBias int               `json:"counter_bias"`
	TimeWasting bool              `json:"time_wasting"`
}

// DefaultTactic is what teams without a stored tactic play with.
func DefaultTactic() Tactic {
	return Tactic{
		Style:       StyleBalanced,
		Marking:     MarkingZonal,
		Pressing:    PressingNormal,
		Clearances:  ClearanceLong,
		Fouls:       FoulsNormal,
		CounterBias: 50,
	}
}

// TeamMatchEntry bundles everything the resolver needs to know about one
// side of a fixture. Lineup is positional: index 0 is the goalkeeper,
// 1-4 defenders, 5-8 midfielders, 9-10 forwards. Shorter lineups are
// handled gracefully.
type TeamMatchEntry struct {
	TeamID      int64              `json:"team_id"`
	Name        string             `json:"name"`
	Competition string             `json:"competition"`
	Lineup      []PlayerAttributes `json:"lineup"`
	Tactic      Tactic             `json:"tactic"`
	Home        bool               `json:"home"`
}

type EventKind string

const (
	EventGoal               EventKind = "GOAL"
	EventOwnGoal            EventKind = "OWN_GOAL"
	EventYellowCard         EventKind = "YELLOW_CARD"
	EventRedCard            EventKind = "RED_CARD"
	EventSubstitution       EventKind = "SUBSTITUTION"
	EventInjury             EventKind = "INJURY"
	EventVARReview          EventKind = "VAR_REVIEW"
	EventVARDisallowed      EventKind = "VAR_DISALLOWED"
	EventDisciplineStoppage EventKind = "DISCIPLINE_STOPPAGE"
	EventTacticalPause      EventKind = "TACTICAL_PAUSE"
	EventNarration          EventKind = "NARRATION"
	EventTimeWasting        EventKind = "TIME_WASTING"
)

// MatchEvent is a single timeline entry. PlayerID and PlayerName are zero
// when the event has no protagonist (narration, pauses) or when a side
// had no lineup to attribute it to.
type MatchEvent struct {
	Minute      int       `json:"minute"`
	Kind        EventKind `json:"kind"`
	TeamID      int64     `json:"team_id,omitempty"`
	PlayerID    int64     `json:"player_id,omitempty"`
	PlayerName  string    `json:"player_name,omitempty"`
	InjuryWeeks int       `json:"injury_weeks,omitempty"`
	Description string    `json:"description"`
}

// MatchOutcome is the full result of one resolved fixture.
type MatchOutcome struct {
	HomeTeamID        int64        `json:"home_team_id"`
	AwayTeamID        int64        `json:"away_team_id"`
	HomeGoals         int          `json:"home_goals"`
	AwayGoals         int          `json:"away_goals"`
	HomeStrength      float64      `json:"home_strength"`
	AwayStrength      float64      `json:"away_strength"`
	VARDisallowedHome int          `json:"var_disallowed_home"`
	VARDisallowedAway int          `json:"var_disallowed_away"`
	Events            []MatchEvent `json:"events"`
	AddedTimeH1       int          `json:"added_time_h1"`
	AddedTimeH2       int          `json:"added_time_h2"`
	Seed              int64        `json:"seed"`
}

// ShootoutResult is the outcome of a penalty shootout. The two totals are
// never equal.
type ShootoutResult struct {
	HomeConverted int  `json:"home_converted"`
	AwayConverted int  `json:"away_converted"`
	SuddenDeath   bool `json:"sudden_death"`
}

// HomeWon reports which side took the shootout.
func (r ShootoutResult) HomeWon() bool {
	return r.HomeConverted > r.AwayConverted
}
