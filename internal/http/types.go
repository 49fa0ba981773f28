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

type Server struct {
	Store          league.LeagueStore
	Runner         *season.Runner
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
