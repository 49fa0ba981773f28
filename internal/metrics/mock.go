package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesSimulated    int
	goalsScored         int
	shootoutsResolved   int
	seasonRollovers     int
	simulationDurations []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		simulationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesSimulated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesSimulated++
}

func (m *Mock) AddGoalsScored(goals int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goalsScored += goals
}

func (m *Mock) IncShootoutsResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shootoutsResolved++
}

func (m *Mock) IncSeasonRollovers() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seasonRollovers++
}

func (m *Mock) ObserveSimulationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulationDurations = append(m.simulationDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesSimulated returns the number of times IncMatchesSimulated was called.
func (m *Mock) MatchesSimulated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesSimulated
}

// GoalsScored returns the accumulated goal count.
func (m *Mock) GoalsScored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.goalsScored
}

// ShootoutsResolved returns the number of times IncShootoutsResolved was called.
func (m *Mock) ShootoutsResolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shootoutsResolved
}

// SeasonRollovers returns the number of times IncSeasonRollovers was called.
func (m *Mock) SeasonRollovers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seasonRollovers
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// MockStore is an in-memory MetricsStore for tests.
type MockStore struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{counters: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}
