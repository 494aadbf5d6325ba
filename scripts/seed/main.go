package main

import (
	"log"

	"github.com/mainakmishra/equinox/internal/config"
	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.HealthLog{},
		&domain.Note{},
		&domain.Todo{},
		&domain.GoogleToken{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
