package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockPubSubClient is an in-memory PubSubClient for tests. Published
// payloads are kept as passed, keyed by their EventType topic, so a
// test can check what the season runner pushed out without a broker.
// It is safe for concurrent use.
type MockPubSubClient struct {
	mu sync.Mutex

	// Spies for method calls
	SendMessageFunc    func(topic EventType, data any) error
	ProcessMessageFunc func(data []byte, returnValue any) error

	// Call records
	Published []PublishedEvent
	Decoded   []DecodeCall
}

// PublishedEvent is one recorded SendMessage call.
type PublishedEvent struct {
	Topic EventType
	Data  any
}

// DecodeCall is one recorded ProcessMessage call.
type DecodeCall struct {
	Data        []byte
	ReturnValue any
}

// NewMock creates a new mock PubSubClient. The projectID is ignored.
func NewMock(projectID string) *MockPubSubClient {
	return &MockPubSubClient{}
}

// Reset clears all call records.
func (m *MockPubSubClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = nil
	m.Decoded = nil
}

// PublishedTo counts the events recorded against one topic.
func (m *MockPubSubClient) PublishedTo(topic EventType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, ev := range m.Published {
		if ev.Topic == topic {
			count++
		}
	}
	return count
}

// SendMessage records the event and executes the mock function if provided.
func (m *MockPubSubClient) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	m.Published = append(m.Published, PublishedEvent{Topic: topic, Data: data})
	m.mu.Unlock()
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

// ProcessMessage records the call and executes the mock function if
// provided; otherwise it decodes the msgpack payload like the real
// client so push-handler tests exercise the same codec.
func (m *MockPubSubClient) ProcessMessage(data []byte, returnValue any) error {
	m.mu.Lock()
	m.Decoded = append(m.Decoded, DecodeCall{Data: data, ReturnValue: returnValue})
	m.mu.Unlock()
	if m.ProcessMessageFunc != nil {
		return m.ProcessMessageFunc(data, returnValue)
	}
	return msgpack.Unmarshal(data, returnValue)
}
