package development

import "github.com/mauv0809/ligasim/internal/matchsim"

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRetired Status = "RETIRED"
)

// Player is the career-level view of a footballer: the match-facing
// attribute sheet plus the biographical fields the off-season engine
// needs.
type Player struct {
	matchsim.PlayerAttributes
	Position  Position `json:"position"`
	BirthYear int      `json:"birth_year"`
	Status    Status   `json:"status"`
}

// Age at the start of the given season year.
func (p Player) Age(seasonYear int) int {
	return seasonYear - p.BirthYear
}

type TrainingIntensity string

const (
	IntensityLow    TrainingIntensity = "LOW"
	IntensityMedium TrainingIntensity = "MEDIUM"
	IntensityHigh   TrainingIntensity = "HIGH"
)

type TrainingFocus string

const (
	FocusBalanced  TrainingFocus = "BALANCED"
	FocusPhysical  TrainingFocus = "PHYSICAL"
	FocusDefensive TrainingFocus = "DEFENSIVE"
	FocusTechnical TrainingFocus = "TECHNICAL"
	FocusAttacking TrainingFocus = "ATTACKING"
)

// StaffProfile rates the club's backroom staff on [0, 100] scales. The
// assistant coach shapes training gains, the physio slows veteran
// decline, and the scout and youth coach drive academy intake quality.
type StaffProfile struct {
	AssistantCoach  int `json:"assistant_coach"`
	GoalkeeperCoach int `json:"goalkeeper_coach"`
	FitnessCoach    int `json:"fitness_coach"`
	Physio          int `json:"physio"`
	Doctor          int `json:"doctor"`
	Scout           int `json:"scout"`
	YouthCoach      int `json:"youth_coach"`
	PerformanceLead int `json:"performance_lead"`
}

// DefaultStaff is an unremarkable mid-table backroom.
func DefaultStaff() StaffProfile {
	return StaffProfile{
		AssistantCoach:  50,
		GoalkeeperCoach: 50,
		FitnessCoach:    50,
		Physio:          50,
		Doctor:          50,
		Scout:           50,
		YouthCoach:      50,
		PerformanceLead: 50,
	}
}

type TrainingPlan struct {
	Intensity TrainingIntensity `json:"intensity"`
	Focus     TrainingFocus     `json:"focus"`
}

// Context is everything club-side that bends a season of development.
type Context struct {
	Staff    StaffProfile `json:"staff"`
	Training TrainingPlan `json:"training"`
}

func DefaultContext() Context {
	return Context{
		Staff: DefaultStaff(),
		Training: TrainingPlan{
			Intensity: IntensityMedium,
			Focus:     FocusBalanced,
		},
	}
}
