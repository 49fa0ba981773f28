package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/ligasim/internal/database"
	"github.com/mauv0809/ligasim/internal/development"
	"github.com/mauv0809/ligasim/internal/league"
	"github.com/mauv0809/ligasim/internal/matchsim"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "ligasim.db",
		"MIGRATIONS_DIR":    "./migrations",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"LEAGUE_CODE":       "ES1",
		"SEED_SEED":         "1",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var clubNames = []string{
	"Atlético Ribera", "Deportivo Almodóvar", "Real Zubiri", "CF Montenegro",
	"Racing Valdemoro", "Sporting Carranza", "UD Pedregal", "Celta Miranda",
	"Hércules Laguna", "Levante Ondarroa", "Osasuna del Valle", "Real Betanzos",
	"Recreativo Alcázar", "Gimnástica Soria", "CD Peñalara", "Athletic Urdiales",
	"Espanyol de Gracia", "Mallorca Nord", "Cádiz Atlántico", "Granada Sur",
}

var firstNames = []string{"Álvaro", "Borja", "César", "Dani", "Eneko", "Fermín", "Gorka", "Héctor", "Iker", "Javi", "Koldo", "Luis", "Mikel", "Nacho", "Óscar", "Pablo", "Quique", "Raúl", "Sergi", "Txema"}
var lastNames = []string{"Aguirre", "Blanco", "Castillo", "Domínguez", "Esteban", "Ferrer", "Gallardo", "Herrera", "Ibáñez", "Jiménez", "Lozano", "Marcos", "Navarro", "Ortega", "Pascual", "Quintana", "Rovira", "Salinas", "Torres", "Urrutia"}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	seed, err := strconv.ParseInt(cfg["SEED_SEED"], 10, 64)
	if err != nil {
		log.Fatalf("SEED_SEED must be an integer: %s", err)
	}
	rng := rand.New(rand.NewSource(seed))

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := league.New(db)

	teams := make([]league.Team, len(clubNames))
	for i, name := range clubNames {
		teams[i] = league.Team{
			ID:          int64(i + 1),
			Name:        name,
			ShortName:   shortName(name),
			Competition: cfg["LEAGUE_CODE"],
		}
	}
	if err := store.UpsertTeams(teams); err != nil {
		log.Fatalf("Failed to insert teams: %s", err)
	}
	log.Info("Inserted teams.", "count", len(teams))

	var players []league.Player
	for _, team := range teams {
		// Top of the table gets the better squads.
		base := 68 - int(team.ID-1)
		players = append(players, buildSquad(rng, team.ID, base)...)

		if err := store.SaveTactic(team.ID, matchsim.DefaultTactic()); err != nil {
			log.Fatalf("Failed to save tactic for team %d: %s", team.ID, err)
		}
	}
	if err := store.UpsertPlayers(players); err != nil {
		log.Fatalf("Failed to insert players: %s", err)
	}
	log.Info("Inserted players.", "count", len(players))
	log.Info("Seeding complete.")
}

// buildSquad generates a 22 man squad around the given base level:
// three keepers, seven defenders, seven midfielders, five forwards.
func buildSquad(rng *rand.Rand, teamID int64, base int) []league.Player {
	shape := []struct {
		position development.Position
		count    int
	}{
		{development.PositionGoalkeeper, 3},
		{development.PositionDefender, 7},
		{development.PositionMidfielder, 7},
		{development.PositionForward, 5},
	}

	var squad []league.Player
	for _, slot := range shape {
		for i := 0; i < slot.count; i++ {
			p := league.Player{TeamID: teamID}
			p.Name = fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
			p.Position = slot.position
			p.BirthYear = 2026 - (18 + rng.Intn(16))
			p.Status = development.StatusActive

			p.Speed = level(rng, base)
			p.Stamina = level(rng, base)
			p.Aggression = level(rng, base-10)
			p.Quality = level(rng, base)
			p.Form = 50
			p.Morale = 50
			if slot.position == development.PositionGoalkeeper {
				p.Goalkeeping = level(rng, base+2)
				p.Finishing = level(rng, 20)
				p.Dribbling = level(rng, 25)
				p.Passing = level(rng, base-15)
				p.ShotPower = level(rng, 20)
				p.Tackling = level(rng, 25)
			} else {
				p.Finishing = positional(rng, base, slot.position, development.PositionForward)
				p.ShotPower = positional(rng, base, slot.position, development.PositionForward)
				p.Tackling = positional(rng, base, slot.position, development.PositionDefender)
				p.Passing = positional(rng, base, slot.position, development.PositionMidfielder)
				p.Dribbling = level(rng, base-5)
			}
			squad = append(squad, p)
		}
	}
	return squad
}

// level samples around a base with a small spread, clamped to [1, 99].
func level(rng *rand.Rand, base int) int {
	v := base - 6 + rng.Intn(13)
	if v < 1 {
		v = 1
	}
	if v > 99 {
		v = 99
	}
	return v
}

// positional bumps the attribute for players in their specialist role.
func positional(rng *rand.Rand, base int, position, specialist development.Position) int {
	if position == specialist {
		return level(rng, base+5)
	}
	return level(rng, base-8)
}

func shortName(name string) string {
	runes := []rune(name)
	if len(runes) <= 3 {
		return name
	}
	return string(runes[:3])
}
