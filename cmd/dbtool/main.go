package main

import (
	"database/sql"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"load-optimizer-service/internal/adapters/repositories"
	"load-optimizer-service/internal/platform/db"
	"load-optimizer-service/internal/platform/logging"
)

// dbtool initializes the dispatch schema and optionally seeds demo data.
func main() {
	log := logging.New("dbtool")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/dispatch.json"
	}

	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed")
	}

	log.Info().Msg("schema ready, seeding complete")
}

func initAndSeed(database *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return err
	}
	return repositories.SeedFromJSON(database, seedPath)
}
