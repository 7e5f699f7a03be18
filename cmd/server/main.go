package main

import (
	"context"
	"drone-delivery-service/internal/adapters/cache"
	"drone-delivery-service/internal/adapters/repositories"
	"drone-delivery-service/internal/adapters/webserver"
	"drone-delivery-service/internal/api"
	"drone-delivery-service/internal/config"
	"drone-delivery-service/internal/platform/db"
	"drone-delivery-service/internal/platform/obs"
	"drone-delivery-service/internal/services"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the web server) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	webServerURL := config.Get("WEBSERVER_URL", "http://localhost:9898")
	port := config.Get("PORT", "8080")

	planner, err := config.LoadPlanner()
	if err != nil {
		log.Fatal(err)
	}

	db, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	// Menu lookups are cached in Redis when configured; location codes
	// always go through the Postgres cache.
	var menuCache webserver.MenuCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		menuCache = cache.NewRedisMenuCache(rdb, 24*time.Hour)
	}

	client, err := webserver.NewClient(webServerURL, cache.NewSQLLocationCache(db), menuCache)
	if err != nil {
		log.Fatal(err)
	}

	metrics, err := obs.NewPlannerMetrics(nil)
	if err != nil {
		log.Fatal(err)
	}

	deps := services.PlanDayDeps{
		Orders:    repositories.NewPostgresOrderRepository(db),
		Menu:      client,
		Locations: client,
		Zones:     client,
		Store:     repositories.NewPostgresJourneyStore(db),
		Metrics:   metrics,
	}
	router := api.NewRouter(deps, planner.Params, planner.FeePence)

	// Cold caches mean one planning request may fetch every menu and
	// location code first.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
