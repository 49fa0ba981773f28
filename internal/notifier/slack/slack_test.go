package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/metrics"
	"github.com/mauv0809/ligasim/internal/notifier"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func summaries() []notifier.MatchSummary {
	return []notifier.MatchSummary{
		{HomeName: "Deportivo Norte", AwayName: "Atletico Sur", HomeGoals: 2, AwayGoals: 1},
		{HomeName: "Racing Este", AwayName: "Union Oeste", HomeGoals: 0, AwayGoals: 0},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	n := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := n.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendMatchdaySummary_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	err := n.SendMatchdaySummary("ES1", 3, summaries(), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
}

func TestFormatMatchdaySummary(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := n.formatMatchdaySummary("ES1", 3, summaries())

	require.NotEmpty(t, msg.Blocks.BlockSet)
	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "Matchday 3")
}

func TestFormatStandings_MarksPodium(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	rows := []notifier.StandingRow{
		{TeamName: "Deportivo Norte", Record: competition.StandingRecord{TeamID: 1, Position: 1, Points: 9, GoalsFor: 7}},
		{TeamName: "Atletico Sur", Record: competition.StandingRecord{TeamID: 2, Position: 2, Points: 6, GoalsFor: 4}},
	}

	msg := n.formatStandings("ES1", rows)

	require.Len(t, msg.Blocks.BlockSet, 2)
	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "Deportivo Norte")
	assert.Contains(t, section.Text.Text, "9 pts")
}

func TestFormatCupSummary_ShowsPenalties(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	matches := []notifier.MatchSummary{
		{HomeName: "Deportivo Norte", AwayName: "Atletico Sur", HomeGoals: 1, AwayGoals: 1, DecidedByPenalties: true, HomePenalties: 4, AwayPenalties: 3},
	}

	msg := n.formatCupRoundSummary("SF", matches)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "on penalties")
}
