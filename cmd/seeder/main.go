package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/pong-tracker/internal/database"
	"github.com/mauv0809/pong-tracker/internal/league"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"DB_NAME"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	if value, ok := os.LookupEnv("MIGRATIONS_DIR"); ok {
		config["MIGRATIONS_DIR"] = value
	} else {
		config["MIGRATIONS_DIR"] = "./migrations"
	}
	return config
}

// sessionTimes returns n chronologically ascending timestamps ending before now,
// with random gaps between consecutive games.
func sessionTimes(n int, now time.Time) []time.Time {
	times := make([]time.Time, n)
	t := now.Add(-90 * 24 * time.Hour)
	for i := range times {
		t = t.Add(time.Duration(1+rand.Intn(7200)) * time.Second)
		times[i] = t
	}
	return times
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	store := league.New(db)

	players := []string{"Ana", "Bo", "Chris", "Dana", "Eli", "Fran"}
	for _, name := range players {
		if _, _, err := store.GetOrCreatePlayer(name); err != nil {
			log.Fatalf("Failed to create player %s: %s", name, err)
		}
	}
	log.Info("Ensured dummy players exist.", "count", len(players))

	const numGames = 500
	difficulties := []league.BotDifficulty{league.BotEasy, league.BotMedium, league.BotHard}

	log.Info("Preparing to record dummy games...", "total", numGames)
	startTime := time.Now()

	// Timestamps ascend with insertion order so the streak counters match what
	// the session log implies.
	createdAts := sessionTimes(numGames, time.Now().UTC())

	for i := 0; i < numGames; i++ {
		createdAt := createdAts[i]
		session := &league.GameSession{
			ID:           uuid.NewString(),
			GameDuration: 60 + rand.Intn(540),
			CreatedAt:    createdAt,
		}

		var outcomes []league.Outcome
		if rand.Intn(4) == 0 {
			// Roughly a quarter of the seeded games are against the bot.
			player := players[rand.Intn(len(players))]
			session.Mode = league.ModeSinglePlayer
			session.Player1Name = player
			session.BotDifficulty = &difficulties[rand.Intn(len(difficulties))]
			won := rand.Intn(2) == 0
			if won {
				session.Winner = player
				session.Player1Score = 11
				session.Player2Score = rand.Intn(10)
			} else {
				session.Winner = "bot"
				session.Player1Score = rand.Intn(10)
				session.Player2Score = 11
			}
			outcomes = []league.Outcome{{PlayerName: player, Won: won}}
		} else {
			p1 := players[rand.Intn(len(players))]
			p2 := p1
			for p2 == p1 {
				p2 = players[rand.Intn(len(players))]
			}
			session.Mode = league.ModeMultiplayer
			session.Player1Name = p1
			session.Player2Name = &p2
			if rand.Intn(2) == 0 {
				session.Winner = p1
				session.Player1Score = 11
				session.Player2Score = rand.Intn(10)
			} else {
				session.Winner = p2
				session.Player1Score = rand.Intn(10)
				session.Player2Score = 11
			}
			outcomes = []league.Outcome{
				{PlayerName: p1, Won: session.Winner == p1},
				{PlayerName: p2, Won: session.Winner == p2},
			}
		}

		if err := store.RecordGame(session, outcomes); err != nil {
			log.Fatalf("Failed to record dummy game: %s", err)
		}

		if (i+1)%100 == 0 {
			log.Info("Recorded batch", "completed", i+1, "total", numGames)
		}
	}

	duration := time.Since(startTime)
	log.Info("Successfully recorded all dummy games.", "duration", duration)
}
