package notifier

import "github.com/mauv0809/ligasim/internal/competition"

// MatchSummary is the notifier-facing digest of one resolved fixture.
type MatchSummary struct {
	HomeName           string
	AwayName           string
	HomeGoals          int
	AwayGoals          int
	DecidedByPenalties bool
	HomePenalties      int
	AwayPenalties      int
}

// StandingRow pairs a StandingRecord with the team name it belongs to.
type StandingRow struct {
	TeamName string
	Record   competition.StandingRecord
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed league matchdays
	SendMatchdaySummary(competitionCode string, matchday int, matches []MatchSummary, dryRun bool) error
	SendStandings(competitionCode string, rows []StandingRow, dryRun bool) error
	// For cup rounds
	SendCupRoundSummary(round string, matches []MatchSummary, dryRun bool) error
	SendChampion(competitionCode, teamName string, dryRun bool) error
}
