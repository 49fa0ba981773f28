package season

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/development"
	"github.com/mauv0809/ligasim/internal/league"
	"github.com/mauv0809/ligasim/internal/matchsim"
	"github.com/mauv0809/ligasim/internal/metrics"
	"github.com/mauv0809/ligasim/internal/notifier"
	"github.com/mauv0809/ligasim/internal/pubsub"
)

// New creates a new Runner.
func New(store league.LeagueStore, notifier notifier.Notifier, metrics metrics.Metrics, metricsStore metrics.MetricsStore, pubsub pubsub.PubSubClient, masterSeed int64, seasonYear int) *Runner {
	return &Runner{
		store:        store,
		notifier:     notifier,
		metrics:      metrics,
		metricsStore: metricsStore,
		pubsub:       pubsub,
		masterSeed:   masterSeed,
		seasonYear:   seasonYear,
	}
}

// SetupLeague wipes any existing schedule for the competition and
// generates a fresh double round-robin from the registered teams.
func (r *Runner) SetupLeague(competitionCode string) error {
	teams, err := r.store.GetTeams(competitionCode)
	if err != nil {
		return fmt.Errorf("loading teams for %s: %w", competitionCode, err)
	}
	teamIDs := make([]int64, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}

	fixtures, err := competition.GenerateLeague(competitionCode, teamIDs, 1)
	if err != nil {
		return fmt.Errorf("generating league schedule: %w", err)
	}

	if err := r.store.DeleteFixtures(competitionCode); err != nil {
		return fmt.Errorf("clearing old fixtures: %w", err)
	}
	if _, err := r.store.InsertFixtures(fixtures); err != nil {
		return fmt.Errorf("inserting fixtures: %w", err)
	}
	log.Info("League schedule generated", "competition", competitionCode, "teams", len(teams), "fixtures", len(fixtures))
	return nil
}

// PlayMatchday resolves every unplayed fixture of the given matchday,
// then recomputes the table and pushes the matchday summary and
// standings out. Injury clocks tick down once per call, before any
// lineups are picked.
func (r *Runner) PlayMatchday(competitionCode string, matchday int, dryRun bool) error {
	if err := r.store.TickAvailability(); err != nil {
		return fmt.Errorf("ticking availability: %w", err)
	}

	fixtures, err := r.store.GetFixtures(competitionCode, matchday)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures for %s matchday %d", competitionCode, matchday)
	}

	var summaries []notifier.MatchSummary
	for _, f := range fixtures {
		if f.Played {
			log.Debug("Skipping already played fixture", "fixtureID", f.ID)
			continue
		}
		summary, err := r.playFixture(f, false)
		if err != nil {
			log.Error("Failed to resolve fixture", "error", err, "fixtureID", f.ID)
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) > 0 {
		if err := r.notifier.SendMatchdaySummary(competitionCode, matchday, summaries, dryRun); err != nil {
			log.Error("Failed to send matchday summary", "error", err)
		}
		rows, err := r.Standings(competitionCode)
		if err != nil {
			log.Error("Failed to compute standings", "error", err)
		} else {
			if err := r.notifier.SendStandings(competitionCode, rows, dryRun); err != nil {
				log.Error("Failed to send standings", "error", err)
			}
			if err := r.pubsub.SendMessage(pubsub.EventStandingsUpdated, rows); err != nil {
				log.Error("Failed to publish standings update", "error", err)
			}
		}
	}
	r.metricsStore.Increment(metrics.KeyMatchdaysSimulated)
	log.Info("Matchday resolved", "competition", competitionCode, "matchday", matchday, "matches", len(summaries))
	return nil
}

// Standings returns the current table with team names attached, best
// first.
func (r *Runner) Standings(competitionCode string) ([]notifier.StandingRow, error) {
	teams, err := r.store.GetTeams(competitionCode)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	fixtures, err := r.store.GetAllFixtures(competitionCode)
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}

	teamIDs := make([]int64, len(teams))
	names := make(map[int64]string, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
		names[t.ID] = t.Name
	}

	records := competition.CalculateStandings(teamIDs, fixtures)
	rows := make([]notifier.StandingRow, len(records))
	for i, rec := range records {
		rows[i] = notifier.StandingRow{TeamName: names[rec.TeamID], Record: rec}
	}
	return rows, nil
}

// SetupCup wipes the cup and seeds its opening round. The bracket is
// drawn from the registered teams in a deterministic shuffled order;
// only the final is played at a neutral venue.
func (r *Runner) SetupCup(competitionCode string) error {
	teams, err := r.store.GetTeams(competitionCode)
	if err != nil {
		return fmt.Errorf("loading teams for %s: %w", competitionCode, err)
	}
	round, ok := firstRoundBySize[len(teams)]
	if !ok {
		return fmt.Errorf("cup needs a field of 2, 4, 8, 16 or 32 teams, got %d", len(teams))
	}

	teamIDs := make([]int64, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}
	r.shuffleDraw(teamIDs, round)

	fixtures, err := competition.GenerateKnockout(competitionCode, teamIDs, round, 1, round == "F")
	if err != nil {
		return fmt.Errorf("generating cup bracket: %w", err)
	}
	if err := r.store.DeleteFixtures(competitionCode); err != nil {
		return fmt.Errorf("clearing old fixtures: %w", err)
	}
	if _, err := r.store.InsertFixtures(fixtures); err != nil {
		return fmt.Errorf("inserting fixtures: %w", err)
	}
	log.Info("Cup bracket generated", "competition", competitionCode, "round", round, "ties", len(fixtures))
	return nil
}

// PlayCupRound resolves every unplayed tie of the round. Level ties go
// straight to a shootout, so every tie leaves with a winner.
func (r *Runner) PlayCupRound(competitionCode, round string, dryRun bool) error {
	if err := r.store.TickAvailability(); err != nil {
		return fmt.Errorf("ticking availability: %w", err)
	}

	fixtures, err := r.store.GetFixturesByRound(competitionCode, round)
	if err != nil {
		return fmt.Errorf("loading round %s: %w", round, err)
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures for %s round %s", competitionCode, round)
	}

	var summaries []notifier.MatchSummary
	for _, f := range fixtures {
		if f.Played {
			continue
		}
		summary, err := r.playFixture(f, true)
		if err != nil {
			log.Error("Failed to resolve cup tie", "error", err, "fixtureID", f.ID)
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) > 0 {
		if err := r.notifier.SendCupRoundSummary(round, summaries, dryRun); err != nil {
			log.Error("Failed to send cup round summary", "error", err)
		}
		if err := r.pubsub.SendMessage(pubsub.EventCupRoundCompleted, summaries); err != nil {
			log.Error("Failed to publish cup round completion", "error", err)
		}
	}
	r.metricsStore.Increment(metrics.KeyCupRoundsSimulated)
	log.Info("Cup round resolved", "competition", competitionCode, "round", round, "ties", len(summaries))
	return nil
}

// AdvanceCupRound pairs the winners of a fully played round into the
// next one. After the final it announces the champion instead.
func (r *Runner) AdvanceCupRound(competitionCode, round string, dryRun bool) error {
	fixtures, err := r.store.GetFixturesByRound(competitionCode, round)
	if err != nil {
		return fmt.Errorf("loading round %s: %w", round, err)
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures for %s round %s", competitionCode, round)
	}

	winners := make([]int64, 0, len(fixtures))
	lastMatchday := 0
	for _, f := range fixtures {
		if !f.Played {
			return fmt.Errorf("round %s has unplayed ties, fixture %d first", round, f.ID)
		}
		winners = append(winners, f.Winner())
		if f.Matchday > lastMatchday {
			lastMatchday = f.Matchday
		}
	}

	if round == "F" {
		champion, err := r.store.GetTeam(winners[0])
		if err != nil {
			return fmt.Errorf("loading champion: %w", err)
		}
		if err := r.notifier.SendChampion(competitionCode, champion.Name, dryRun); err != nil {
			log.Error("Failed to announce champion", "error", err)
		}
		log.Info("Cup decided", "competition", competitionCode, "champion", champion.Name)
		return nil
	}

	next, ok := nextRound[round]
	if !ok {
		return fmt.Errorf("unknown cup round %q", round)
	}
	r.shuffleDraw(winners, next)

	fixtures, err = competition.GenerateKnockout(competitionCode, winners, next, lastMatchday+1, next == "F")
	if err != nil {
		return fmt.Errorf("generating round %s: %w", next, err)
	}
	if _, err := r.store.InsertFixtures(fixtures); err != nil {
		return fmt.Errorf("inserting round %s: %w", next, err)
	}
	log.Info("Cup round drawn", "competition", competitionCode, "round", next, "ties", len(fixtures))
	return nil
}

// RolloverSeason ages every roster by one season and lands the academy
// intake. Retirements and attribute drift are applied in place, youth
// prospects are appended as new rows.
func (r *Runner) RolloverSeason(dryRun bool) error {
	teams, err := r.store.GetTeams("")
	if err != nil {
		return fmt.Errorf("loading teams: %w", err)
	}

	seasonSeed := r.masterSeed ^ int64(r.seasonYear)
	ctx := development.DefaultContext()

	for _, team := range teams {
		roster, err := r.store.GetRoster(team.ID)
		if err != nil {
			log.Error("Failed to load roster", "error", err, "teamID", team.ID)
			continue
		}

		devRoster := make([]development.Player, len(roster))
		for i, p := range roster {
			devRoster[i] = p.Player
		}
		devRoster = development.ApplySeasonGrowth(devRoster, r.seasonYear, seasonSeed, ctx)

		evolved := make([]league.Player, 0, len(roster)+3)
		for i, dp := range devRoster {
			evolved = append(evolved, league.Player{
				Player:           dp,
				TeamID:           team.ID,
				UnavailableWeeks: roster[i].UnavailableWeeks,
			})
		}
		intake := development.GenerateYouthPlayers(team.ID, development.YouthIntakeSize(ctx), r.seasonYear, seasonSeed, ctx)
		for _, yp := range intake {
			evolved = append(evolved, league.Player{Player: yp, TeamID: team.ID})
		}

		if dryRun {
			log.Info("Dry run, roster evolution not persisted", "teamID", team.ID, "players", len(evolved))
			continue
		}
		if err := r.store.UpsertPlayers(evolved); err != nil {
			log.Error("Failed to persist evolved roster", "error", err, "teamID", team.ID)
			continue
		}
		if err := r.pubsub.SendMessage(pubsub.EventRosterEvolved, team.ID); err != nil {
			log.Error("Failed to publish roster evolution", "error", err, "teamID", team.ID)
		}
	}

	r.metrics.IncSeasonRollovers()
	r.metricsStore.Increment(metrics.KeySeasonsRolledOver)
	log.Info("Season rolled over", "year", r.seasonYear, "teams", len(teams))
	return nil
}

// playFixture resolves one fixture end to end: lineups, simulation,
// the optional shootout, persistence, and the knock-on bookkeeping
// (injuries, morale, metrics, events).
func (r *Runner) playFixture(f competition.Fixture, knockout bool) (notifier.MatchSummary, error) {
	start := time.Now()

	homeEntry, homeTeam, err := r.matchEntry(f.HomeTeamID, true)
	if err != nil {
		return notifier.MatchSummary{}, err
	}
	awayEntry, awayTeam, err := r.matchEntry(f.AwayTeamID, false)
	if err != nil {
		return notifier.MatchSummary{}, err
	}

	f.Seed = r.masterSeed ^ f.ID
	outcome := matchsim.Resolve(homeEntry, awayEntry, f.Seed, f.Neutral)

	f.Played = true
	f.HomeGoals = outcome.HomeGoals
	f.AwayGoals = outcome.AwayGoals

	if knockout && outcome.HomeGoals == outcome.AwayGoals {
		shootout := matchsim.ResolveShootout(homeEntry, awayEntry, f.Seed)
		f.DecidedByPenalties = true
		f.HomePenalties = shootout.HomeConverted
		f.AwayPenalties = shootout.AwayConverted
		r.metrics.IncShootoutsResolved()
	}

	if err := r.store.RecordResult(f, outcome.Events); err != nil {
		return notifier.MatchSummary{}, fmt.Errorf("recording result for fixture %d: %w", f.ID, err)
	}

	r.applyInjuries(outcome.Events)
	r.applyMorale(f)

	r.metrics.IncMatchesSimulated()
	r.metrics.AddGoalsScored(outcome.HomeGoals + outcome.AwayGoals)
	r.metrics.ObserveSimulationDuration(float64(time.Since(start).Milliseconds()))

	if err := r.pubsub.SendMessage(pubsub.EventMatchResolved, outcome); err != nil {
		log.Error("Failed to publish match result", "error", err, "fixtureID", f.ID)
	}

	log.Info("Fixture resolved",
		"fixtureID", f.ID,
		"home", homeTeam.Name,
		"away", awayTeam.Name,
		"score", fmt.Sprintf("%d-%d", f.HomeGoals, f.AwayGoals),
		"penalties", f.DecidedByPenalties,
	)

	return notifier.MatchSummary{
		HomeName:           homeTeam.Name,
		AwayName:           awayTeam.Name,
		HomeGoals:          f.HomeGoals,
		AwayGoals:          f.AwayGoals,
		DecidedByPenalties: f.DecidedByPenalties,
		HomePenalties:      f.HomePenalties,
		AwayPenalties:      f.AwayPenalties,
	}, nil
}

func (r *Runner) matchEntry(teamID int64, home bool) (matchsim.TeamMatchEntry, *league.Team, error) {
	team, err := r.store.GetTeam(teamID)
	if err != nil {
		return matchsim.TeamMatchEntry{}, nil, fmt.Errorf("loading team %d: %w", teamID, err)
	}
	roster, err := r.store.GetRoster(teamID)
	if err != nil {
		return matchsim.TeamMatchEntry{}, nil, fmt.Errorf("loading roster for team %d: %w", teamID, err)
	}
	tactic, err := r.store.GetTactic(teamID)
	if err != nil {
		return matchsim.TeamMatchEntry{}, nil, fmt.Errorf("loading tactic for team %d: %w", teamID, err)
	}
	return league.BuildMatchEntry(*team, roster, tactic, home), team, nil
}

func (r *Runner) applyInjuries(events []matchsim.MatchEvent) {
	for _, ev := range events {
		if ev.Kind != matchsim.EventInjury || ev.PlayerID == 0 {
			continue
		}
		if err := r.store.SetPlayerUnavailable(ev.PlayerID, ev.InjuryWeeks); err != nil {
			log.Error("Failed to sideline injured player", "error", err, "playerID", ev.PlayerID)
		}
	}
}

// morale swings with the result: a win lifts, a loss stings, and a
// three-goal margin doubles down. Draws leave morale untouched.
func (r *Runner) applyMorale(f competition.Fixture) {
	diff := f.HomeGoals - f.AwayGoals
	var homeDelta, awayDelta int
	switch {
	case diff >= 3:
		homeDelta, awayDelta = 5, -5
	case diff > 0:
		homeDelta, awayDelta = 3, -2
	case diff <= -3:
		homeDelta, awayDelta = -5, 5
	case diff < 0:
		homeDelta, awayDelta = -2, 3
	default:
		return
	}
	if err := r.store.AdjustTeamMorale(f.HomeTeamID, homeDelta); err != nil {
		log.Error("Failed to adjust morale", "error", err, "teamID", f.HomeTeamID)
	}
	if err := r.store.AdjustTeamMorale(f.AwayTeamID, awayDelta); err != nil {
		log.Error("Failed to adjust morale", "error", err, "teamID", f.AwayTeamID)
	}
}

// shuffleDraw shuffles a cup draw in place. The order depends only on
// the master seed and the round name, so re-running a draw yields the
// same bracket.
func (r *Runner) shuffleDraw(teamIDs []int64, round string) {
	h := fnv.New64a()
	h.Write([]byte(round))
	rng := rand.New(rand.NewSource(r.masterSeed ^ int64(h.Sum64())))
	rng.Shuffle(len(teamIDs), func(i, j int) {
		teamIDs[i], teamIDs[j] = teamIDs[j], teamIDs[i]
	})
}
