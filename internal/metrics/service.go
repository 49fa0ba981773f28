package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_matches_simulated_total",
			Help: "The total number of fixtures resolved by the simulator.",
		}),
		GoalsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_goals_scored_total",
			Help: "The total number of goals across all simulated fixtures.",
		}),
		ShootoutsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_shootouts_resolved_total",
			Help: "The total number of knockout ties settled from the penalty spot.",
		}),
		SeasonRollovers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_season_rollovers_total",
			Help: "The total number of off-season development passes applied.",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ligasim_match_simulation_duration_seconds",
			Help:    "The duration of individual fixture resolution.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ligasim_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ligasim_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesSimulated,
		s.GoalsScored,
		s.ShootoutsResolved,
		s.SeasonRollovers,
		s.SimulationDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesSimulated() {
	s.MatchesSimulated.Inc()
}

func (s *Service) AddGoalsScored(goals int) {
	s.GoalsScored.Add(float64(goals))
}

func (s *Service) IncShootoutsResolved() {
	s.ShootoutsResolved.Inc()
}

func (s *Service) IncSeasonRollovers() {
	s.SeasonRollovers.Inc()
}

func (s *Service) ObserveSimulationDuration(duration float64) {
	s.SimulationDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
