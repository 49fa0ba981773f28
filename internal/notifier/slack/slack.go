package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/mauv0809/ligasim/internal/metrics"
	"github.com/mauv0809/ligasim/internal/notifier"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendMatchdaySummary(competitionCode string, matchday int, matches []notifier.MatchSummary, dryRun bool) error {
	msg := s.formatMatchdaySummary(competitionCode, matchday, matches)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendStandings(competitionCode string, rows []notifier.StandingRow, dryRun bool) error {
	msg := s.formatStandings(competitionCode, rows)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendCupRoundSummary(round string, matches []notifier.MatchSummary, dryRun bool) error {
	msg := s.formatCupRoundSummary(round, matches)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendChampion(competitionCode, teamName string, dryRun bool) error {
	msg := s.formatChampion(competitionCode, teamName)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func scoreline(m notifier.MatchSummary) string {
	line := fmt.Sprintf("%s %d - %d %s", m.HomeName, m.HomeGoals, m.AwayGoals, m.AwayName)
	if m.DecidedByPenalties {
		line += fmt.Sprintf(" (%d-%d on penalties)", m.HomePenalties, m.AwayPenalties)
	}
	return line
}

// formatMatchdaySummary creates the Slack message for a completed matchday using Block Kit.
func (s *Notifier) formatMatchdaySummary(competitionCode string, matchday int, matches []notifier.MatchSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Matchday %d results (%s)", matchday, competitionCode), false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(matches) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No fixtures were played.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for _, m := range matches {
		lines = append(lines, scoreline(m))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the league table.
func (s *Notifier) formatStandings(competitionCode string, rows []notifier.StandingRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("League table (%s)", competitionCode), false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No standings available yet.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for _, row := range rows {
		var medal string
		switch row.Record.Position {
		case 1:
			medal = " 🥇"
		case 2:
			medal = " 🥈"
		case 3:
			medal = " 🥉"
		}
		lines = append(lines, fmt.Sprintf("%d.%s %s — %d pts (GD %+d, GF %d)",
			row.Record.Position,
			medal,
			row.TeamName,
			row.Record.Points,
			row.Record.GoalDifference(),
			row.Record.GoalsFor,
		))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatCupRoundSummary creates the Slack message for a completed knockout round.
func (s *Notifier) formatCupRoundSummary(round string, matches []notifier.MatchSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Cup round %s results", round), false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(matches) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No ties were played.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for _, m := range matches {
		lines = append(lines, scoreline(m))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatChampion creates the Slack message announcing a cup winner.
func (s *Notifier) formatChampion(competitionCode, teamName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 We have a champion! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s win the %s.", teamName, competitionCode), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
