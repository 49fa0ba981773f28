package league

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/ligasim/internal/development"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Team is a club competing in one competition.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Competition string `json:"competition"`
}

// Player is a squad member as persisted: the career sheet plus club
// membership and injury bookkeeping. UnavailableWeeks counts down one
// per matchday; an injured player re-enters selection at zero.
type Player struct {
	development.Player
	TeamID           int64 `json:"team_id"`
	UnavailableWeeks int   `json:"unavailable_weeks"`
}
