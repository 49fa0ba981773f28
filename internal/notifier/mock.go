package notifier

import "sync"

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchdaySummaryFunc func(competitionCode string, matchday int, matches []MatchSummary, dryRun bool) error
	SendStandingsFunc       func(competitionCode string, rows []StandingRow, dryRun bool) error
	SendCupRoundSummaryFunc func(round string, matches []MatchSummary, dryRun bool) error
	SendChampionFunc        func(competitionCode, teamName string, dryRun bool) error

	// Call records
	SendMatchdaySummaryCalls []struct {
		CompetitionCode string
		Matchday        int
		Matches         []MatchSummary
		DryRun          bool
	}
	SendStandingsCalls []struct {
		CompetitionCode string
		Rows            []StandingRow
		DryRun          bool
	}
	SendCupRoundSummaryCalls []struct {
		Round   string
		Matches []MatchSummary
		DryRun  bool
	}
	SendChampionCalls []struct {
		CompetitionCode string
		TeamName        string
		DryRun          bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendMatchdaySummary(competitionCode string, matchday int, matches []MatchSummary, dryRun bool) error {
	m.mu.Lock()
	m.SendMatchdaySummaryCalls = append(m.SendMatchdaySummaryCalls, struct {
		CompetitionCode string
		Matchday        int
		Matches         []MatchSummary
		DryRun          bool
	}{competitionCode, matchday, matches, dryRun})
	m.mu.Unlock()
	if m.SendMatchdaySummaryFunc != nil {
		return m.SendMatchdaySummaryFunc(competitionCode, matchday, matches, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendStandings(competitionCode string, rows []StandingRow, dryRun bool) error {
	m.mu.Lock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		CompetitionCode string
		Rows            []StandingRow
		DryRun          bool
	}{competitionCode, rows, dryRun})
	m.mu.Unlock()
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(competitionCode, rows, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendCupRoundSummary(round string, matches []MatchSummary, dryRun bool) error {
	m.mu.Lock()
	m.SendCupRoundSummaryCalls = append(m.SendCupRoundSummaryCalls, struct {
		Round   string
		Matches []MatchSummary
		DryRun  bool
	}{round, matches, dryRun})
	m.mu.Unlock()
	if m.SendCupRoundSummaryFunc != nil {
		return m.SendCupRoundSummaryFunc(round, matches, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendChampion(competitionCode, teamName string, dryRun bool) error {
	m.mu.Lock()
	m.SendChampionCalls = append(m.SendChampionCalls, struct {
		CompetitionCode string
		TeamName        string
		DryRun          bool
	}{competitionCode, teamName, dryRun})
	m.mu.Unlock()
	if m.SendChampionFunc != nil {
		return m.SendChampionFunc(competitionCode, teamName, dryRun)
	}
	return nil
}
