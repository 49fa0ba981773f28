package season

import (
	"github.com/mauv0809/ligasim/internal/league"
	"github.com/mauv0809/ligasim/internal/metrics"
	"github.com/mauv0809/ligasim/internal/notifier"
	"github.com/mauv0809/ligasim/internal/pubsub"
)

// Runner drives a season: it schedules competitions, resolves
// matchdays and cup rounds against the store, and rolls the squads
// over into the next year. All randomness flows from masterSeed, so
// two runners with the same seed and the same store produce identical
// seasons.
type Runner struct {
	store        league.LeagueStore
	notifier     notifier.Notifier
	metrics      metrics.Metrics
	metricsStore metrics.MetricsStore
	pubsub       pubsub.PubSubClient
	masterSeed   int64
	seasonYear   int
}

// knockout stage progression, first round keyed by entrant count.
var nextRound = map[string]string{
	"R32": "R16",
	"R16": "QF",
	"QF":  "SF",
	"SF":  "F",
}

var firstRoundBySize = map[int]string{
	32: "R32",
	16: "R16",
	8:  "QF",
	4:  "SF",
	2:  "F",
}
