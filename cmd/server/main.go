package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"load-optimizer-service/internal/adapters/cache"
	"load-optimizer-service/internal/adapters/distance"
	"load-optimizer-service/internal/adapters/repositories"
	"load-optimizer-service/internal/adapters/solver"
	"load-optimizer-service/internal/api"
	"load-optimizer-service/internal/config"
	"load-optimizer-service/internal/platform/db"
	"load-optimizer-service/internal/platform/logging"
	"load-optimizer-service/internal/ports"
	"load-optimizer-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (postgres, Google Routes, redis, the subprocess
// solver) behind ports and starts the HTTP server.
func main() {
	log := logging.New("server")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	database, err := db.Open(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	warehouseRepo := repositories.NewPostgresWarehouseRepository(database)
	vehicleRepo := repositories.NewPostgresVehicleRepository(database)
	orderRepo := repositories.NewPostgresOrderRepository(database)
	ledger := repositories.NewPostgresRunLedger(database)

	// Redis is optional: without an address the engine runs uncached.
	var matrixCache ports.MatrixCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		matrixCache = cache.NewRedisMatrixCache(rdb, cfg.Redis.TTL)
	}

	provider := distance.NewRoutesMatrixProvider(
		cfg.Routing.APIKey,
		cfg.Routing.BaseURL,
		cfg.Routing.Timeout,
		logging.New("routes"),
	)
	engine := services.NewDistanceEngine(provider, matrixCache, cfg.Routing.Timeout, logging.New("distance"))

	loadSolver := solver.NewSubprocessSolver(
		cfg.Solver.Command,
		cfg.Solver.Args,
		cfg.Solver.Timeout,
		logging.New("solver"),
	)

	optimizer := services.NewOptimizer(
		warehouseRepo, vehicleRepo, orderRepo, ledger,
		engine, loadSolver, logging.New("optimizer"),
	)

	router := api.NewRouter(optimizer, warehouseRepo, vehicleRepo, logging.New("api"))

	// Write timeout leaves room for a cold solver run plus the matrix call.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("server listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
