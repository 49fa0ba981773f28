package http

import (
	"net/http"

	"github.com/mauv0809/ligasim/internal/config"
	"github.com/mauv0809/ligasim/internal/league"
	"github.com/mauv0809/ligasim/internal/metrics"
	"github.com/mauv0809/ligasim/internal/notifier"
	"github.com/mauv0809/ligasim/internal/pubsub"
	"github.com/mauv0809/ligasim/internal/season"
)

func NewServer(store league.LeagueStore, runner *season.Runner, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Runner:         runner,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/counters", Chain(s.CountersHandler(), paramsMiddleware))
	s.Router.Handle("/setup-season", Chain(s.SetupSeasonHandler(), paramsMiddleware))
	s.Router.Handle("/simulate-matchday", Chain(s.SimulateMatchdayHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/fixtures", Chain(s.FixturesHandler(), paramsMiddleware))
	s.Router.Handle("/match-events", Chain(s.MatchEventsHandler(), paramsMiddleware))
	s.Router.Handle("/cup/setup", Chain(s.SetupCupHandler(), paramsMiddleware))
	s.Router.Handle("/cup/simulate-round", Chain(s.SimulateCupRoundHandler(), paramsMiddleware))
	s.Router.Handle("/cup/advance", Chain(s.AdvanceCupHandler(), paramsMiddleware))
	s.Router.Handle("/rollover-season", Chain(s.RolloverSeasonHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/match-resolved", Chain(s.MatchResolvedPushHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
