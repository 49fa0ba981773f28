package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// CountersHandler exposes the durable operation counters, as opposed to
// /metrics which only reflects the current process.
func (s *Server) CountersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.MetricsStore.GetAll()
		if err != nil {
			log.Error("Failed to read counters", "error", err)
			http.Error(w, "Failed to read counters", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(counters)
	}
}

func (s *Server) SetupSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.competitionParam(r)
		if err := s.Runner.SetupLeague(code); err != nil {
			log.Error("Failed to set up season", "error", err, "competition", code)
			http.Error(w, "Failed to set up season", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Season schedule generated for %s.", code)
	}
}

func (s *Server) SimulateMatchdayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.competitionParam(r)
		matchday, err := strconv.Atoi(r.URL.Query().Get("matchday"))
		if err != nil || matchday < 1 {
			http.Error(w, "A positive 'matchday' parameter is required", http.StatusBadRequest)
			return
		}
		if err := s.Runner.PlayMatchday(code, matchday, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to simulate matchday", "error", err, "competition", code, "matchday", matchday)
			http.Error(w, "Failed to simulate matchday", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Matchday %d resolved for %s.", matchday, code)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.competitionParam(r)
		rows, err := s.Runner.Standings(code)
		if err != nil {
			log.Error("Failed to compute standings", "error", err, "competition", code)
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}

// FixturesHandler lists fixtures, narrowed by 'matchday' or 'round' if
// either is present.
func (s *Server) FixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.competitionParam(r)
		query := r.URL.Query()

		var fixtures []competition.Fixture
		var err error
		switch {
		case query.Get("round") != "":
			fixtures, err = s.Store.GetFixturesByRound(code, query.Get("round"))
		case query.Get("matchday") != "":
			matchday, parseErr := strconv.Atoi(query.Get("matchday"))
			if parseErr != nil {
				http.Error(w, "Invalid 'matchday' parameter", http.StatusBadRequest)
				return
			}
			fixtures, err = s.Store.GetFixtures(code, matchday)
		default:
			fixtures, err = s.Store.GetAllFixtures(code)
		}
		if err != nil {
			log.Error("Failed to list fixtures", "error", err, "competition", code)
			http.Error(w, "Failed to list fixtures", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fixtures)
	}
}

func (s *Server) MatchEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fixtureID, err := strconv.ParseInt(r.URL.Query().Get("fixtureID"), 10, 64)
		if err != nil {
			http.Error(w, "A numeric 'fixtureID' parameter is required", http.StatusBadRequest)
			return
		}
		events, err := s.Store.GetFixtureEvents(fixtureID)
		if err != nil {
			log.Error("Failed to load match events", "error", err, "fixtureID", fixtureID)
			http.Error(w, "Failed to load match events", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}

func (s *Server) SetupCupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.cupParam(r)
		if err := s.Runner.SetupCup(code); err != nil {
			log.Error("Failed to set up cup", "error", err, "competition", code)
			http.Error(w, "Failed to set up cup", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Cup bracket generated for %s.", code)
	}
}

func (s *Server) SimulateCupRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.cupParam(r)
		round := r.URL.Query().Get("round")
		if round == "" {
			http.Error(w, "A 'round' parameter is required", http.StatusBadRequest)
			return
		}
		if err := s.Runner.PlayCupRound(code, round, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to simulate cup round", "error", err, "competition", code, "round", round)
			http.Error(w, "Failed to simulate cup round", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Round %s resolved for %s.", round, code)
	}
}

func (s *Server) AdvanceCupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.cupParam(r)
		round := r.URL.Query().Get("round")
		if round == "" {
			http.Error(w, "A 'round' parameter is required", http.StatusBadRequest)
			return
		}
		if err := s.Runner.AdvanceCupRound(code, round, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to advance cup", "error", err, "competition", code, "round", round)
			http.Error(w, "Failed to advance cup", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Round %s advanced for %s.", round, code)
	}
}

func (s *Server) RolloverSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Runner.RolloverSeason(isDryRunFromContext(r)); err != nil {
			log.Error("Failed to roll over season", "error", err)
			http.Error(w, "Failed to roll over season", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Season rolled over.")
	}
}

// MatchResolvedPushHandler receives Pub/Sub push deliveries for the
// match-resolved topic and logs the decoded outcome.
func (s *Server) MatchResolvedPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match resolved message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		outcome := matchsim.MatchOutcome{}
		if err := s.pubsub.ProcessMessage(rawData, &outcome); err != nil {
			log.Error("Failed to decode match outcome", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		log.Info("Match resolved event received",
			"homeTeamID", outcome.HomeTeamID,
			"awayTeamID", outcome.AwayTeamID,
			"score", fmt.Sprintf("%d-%d", outcome.HomeGoals, outcome.AwayGoals),
		)
		w.Write([]byte("OK"))
	}
}

func (s *Server) competitionParam(r *http.Request) string {
	if code := r.URL.Query().Get("competition"); code != "" {
		return code
	}
	return s.Cfg.LeagueCode
}

func (s *Server) cupParam(r *http.Request) string {
	if code := r.URL.Query().Get("competition"); code != "" {
		return code
	}
	return s.Cfg.CupCode
}
