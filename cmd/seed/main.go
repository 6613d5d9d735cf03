package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"campus-start/internal/config"
	"campus-start/internal/database/migration"
	dbpostgres "campus-start/internal/database/postgres"
	"campus-start/internal/database/seeder"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	runner := migration.Runner{Dir: "migrations"}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	s := seeder.Runner{Logger: log.Default()}
	if err := s.Run(ctx, db, seeder.UserSeeder{}, seeder.IdeaSeeder{}); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("seed complete")
}
