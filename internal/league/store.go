package league

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/ligasim/internal/competition"
	"github.com/mauv0809/ligasim/internal/development"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

func (s *store) UpsertTeams(teams []Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO teams (id, name, short_name, competition)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			short_name = excluded.short_name,
			competition = excluded.competition;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range teams {
		if _, err := stmt.Exec(t.ID, t.Name, t.ShortName, t.Competition); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *store) GetTeams(competitionCode string) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, name, short_name, competition FROM teams ORDER BY id"
	args := []any{}
	if competitionCode != "" {
		query = "SELECT id, name, short_name, competition FROM teams WHERE competition = ? ORDER BY id"
		args = append(args, competitionCode)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.Competition); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *store) GetTeam(teamID int64) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Team
	err := s.db.QueryRow("SELECT id, name, short_name, competition FROM teams WHERE id = ?", teamID).
		Scan(&t.ID, &t.Name, &t.ShortName, &t.Competition)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("team %d not found", teamID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &t, nil
}

// UpsertPlayers inserts or updates players. Rows with a zero ID are
// treated as new and get a database-assigned ID.
func (s *store) UpsertPlayers(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	insert, err := tx.Prepare(`
		INSERT INTO players (team_id, name, position, birth_year, status, speed, stamina, aggression, quality, finishing, dribbling, passing, shot_power, tackling, goalkeeping, form, morale, unavailable_weeks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer insert.Close()

	upsert, err := tx.Prepare(`
		INSERT INTO players (id, team_id, name, position, birth_year, status, speed, stamina, aggression, quality, finishing, dribbling, passing, shot_power, tackling, goalkeeping, form, morale, unavailable_weeks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			team_id = excluded.team_id,
			name = excluded.name,
			position = excluded.position,
			birth_year = excluded.birth_year,
			status = excluded.status,
			speed = excluded.speed,
			stamina = excluded.stamina,
			aggression = excluded.aggression,
			quality = excluded.quality,
			finishing = excluded.finishing,
			dribbling = excluded.dribbling,
			passing = excluded.passing,
			shot_power = excluded.shot_power,
			tackling = excluded.tackling,
			goalkeeping = excluded.goalkeeping,
			form = excluded.form,
			morale = excluded.morale,
			unavailable_weeks = excluded.unavailable_weeks;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer upsert.Close()

	for _, p := range players {
		common := []any{
			p.TeamID, p.Name, string(p.Position), p.BirthYear, string(p.Status),
			p.Speed, p.Stamina, p.Aggression, p.Quality, p.Finishing, p.Dribbling,
			p.Passing, p.ShotPower, p.Tackling, p.Goalkeeping, p.Form, p.Morale,
			p.UnavailableWeeks,
		}
		if p.ID == 0 {
			_, err = insert.Exec(common...)
		} else {
			_, err = upsert.Exec(append([]any{p.ID}, common...)...)
		}
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

const playerColumns = "id, team_id, name, position, birth_year, status, speed, stamina, aggression, quality, finishing, dribbling, passing, shot_power, tackling, goalkeeping, form, morale, unavailable_weeks"

// GetRoster returns a team's active players, best first.
func (s *store) GetRoster(teamID int64) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+playerColumns+" FROM players WHERE team_id = ? AND status = ? ORDER BY quality DESC, id",
		teamID, string(development.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows), nil
}

func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY team_id, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows), nil
}

func scanPlayers(rows *sql.Rows) []Player {
	var players []Player
	for rows.Next() {
		var p Player
		var position, status string
		err := rows.Scan(
			&p.ID, &p.TeamID, &p.Name, &position, &p.BirthYear, &status,
			&p.Speed, &p.Stamina, &p.Aggression, &p.Quality, &p.Finishing, &p.Dribbling,
			&p.Passing, &p.ShotPower, &p.Tackling, &p.Goalkeeping, &p.Form, &p.Morale,
			&p.UnavailableWeeks,
		)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Position = development.Position(position)
		p.Status = development.Status(status)
		players = append(players, p)
	}
	return players
}

func (s *store) SetPlayerUnavailable(playerID int64, weeks int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE players SET unavailable_weeks = ? WHERE id = ?", weeks, playerID)
	return err
}

// TickAvailability counts every sidelined player one week closer to
// fitness.
func (s *store) TickAvailability() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE players SET unavailable_weeks = unavailable_weeks - 1 WHERE unavailable_weeks > 0")
	return err
}

func (s *store) AdjustTeamMorale(teamID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"UPDATE players SET morale = MAX(0, MIN(100, morale + ?)) WHERE team_id = ?",
		delta, teamID,
	)
	return err
}

func (s *store) SaveTactic(teamID int64, tactic matchsim.Tactic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tacticJSON, err := json.Marshal(tactic)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO tactics (team_id, tactic_json)
		VALUES (?, ?)
		ON CONFLICT(team_id) DO UPDATE SET tactic_json = excluded.tactic_json;
	`, teamID, string(tacticJSON))
	return err
}

// GetTactic returns the stored tactic for a team, or the default when
// none was ever saved.
func (s *store) GetTactic(teamID int64) (matchsim.Tactic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tacticJSON string
	err := s.db.QueryRow("SELECT tactic_json FROM tactics WHERE team_id = ?", teamID).Scan(&tacticJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return matchsim.DefaultTactic(), nil
		}
		return matchsim.DefaultTactic(), fmt.Errorf("database error: %w", err)
	}

	var tactic matchsim.Tactic
	if err := json.Unmarshal([]byte(tacticJSON), &tactic); err != nil {
		log.Error("Failed to unmarshal tactic_json", "error", err, "teamID", teamID)
		return matchsim.DefaultTactic(), nil
	}
	return tactic, nil
}

// InsertFixtures persists a schedule and returns it with the
// database-assigned IDs filled in.
func (s *store) InsertFixtures(fixtures []competition.Fixture) ([]competition.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fixtures (competition, matchday, round, home_team_id, away_team_id, played, home_goals, away_goals, decided_by_penalties, home_penalties, away_penalties, neutral, seed, events_json)
		VALUES (?, ?, ?, ?, ?, 0, -1, -1, 0, 0, 0, ?, 0, '')
	`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	defer stmt.Close()

	out := make([]competition.Fixture, len(fixtures))
	for i, f := range fixtures {
		res, err := stmt.Exec(f.Competition, f.Matchday, f.Round, f.HomeTeamID, f.AwayTeamID, f.Neutral)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		out[i] = f
		out[i].ID = id
		out[i].Played = false
		out[i].HomeGoals = -1
		out[i].AwayGoals = -1
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

const fixtureColumns = "id, competition, matchday, round, home_team_id, away_team_id, played, home_goals, away_goals, decided_by_penalties, home_penalties, away_penalties, neutral, seed"

func (s *store) GetFixtures(competitionCode string, matchday int) ([]competition.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+fixtureColumns+" FROM fixtures WHERE competition = ? AND matchday = ? ORDER BY id",
		competitionCode, matchday,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFixtures(rows), nil
}

func (s *store) GetFixturesByRound(competitionCode, round string) ([]competition.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+fixtureColumns+" FROM fixtures WHERE competition = ? AND round = ? ORDER BY id",
		competitionCode, round,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFixtures(rows), nil
}

func (s *store) GetAllFixtures(competitionCode string) ([]competition.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT "+fixtureColumns+" FROM fixtures WHERE competition = ? ORDER BY matchday, id",
		competitionCode,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFixtures(rows), nil
}

func scanFixtures(rows *sql.Rows) []competition.Fixture {
	var fixtures []competition.Fixture
	for rows.Next() {
		var f competition.Fixture
		err := rows.Scan(
			&f.ID, &f.Competition, &f.Matchday, &f.Round, &f.HomeTeamID, &f.AwayTeamID,
			&f.Played, &f.HomeGoals, &f.AwayGoals, &f.DecidedByPenalties,
			&f.HomePenalties, &f.AwayPenalties, &f.Neutral, &f.Seed,
		)
		if err != nil {
			log.Error("Failed to scan fixture row", "error", err)
			continue
		}
		fixtures = append(fixtures, f)
	}
	return fixtures
}

// RecordResult marks a fixture played and stores its scoreline,
// shootout outcome and event timeline.
func (s *store) RecordResult(fixture competition.Fixture, events []matchsim.MatchEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	eventsJSON, err := json.Marshal(events)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE fixtures SET
			played = 1,
			home_goals = ?,
			away_goals = ?,
			decided_by_penalties = ?,
			home_penalties = ?,
			away_penalties = ?,
			seed = ?,
			events_json = ?
		WHERE id = ?
	`, fixture.HomeGoals, fixture.AwayGoals, fixture.DecidedByPenalties,
		fixture.HomePenalties, fixture.AwayPenalties, fixture.Seed, string(eventsJSON), fixture.ID)
	return err
}

// GetFixtureEvents returns the stored timeline of a played fixture.
func (s *store) GetFixtureEvents(fixtureID int64) ([]matchsim.MatchEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var eventsJSON string
	err := s.db.QueryRow("SELECT events_json FROM fixtures WHERE id = ?", fixtureID).Scan(&eventsJSON)
	if err != nil {
		return nil, err
	}
	if eventsJSON == "" {
		return nil, nil
	}

	var events []matchsim.MatchEvent
	if err := json.Unmarshal([]byte(eventsJSON), &events); err != nil {
		return nil, fmt.Errorf("corrupt events_json for fixture %d: %w", fixtureID, err)
	}
	return events, nil
}

func (s *store) DeleteFixtures(competitionCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM fixtures WHERE competition = ?", competitionCode)
	return err
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"fixtures", "tactics", "players", "teams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
