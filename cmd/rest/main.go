package main

import (
	"log"

	"chambers-practice-be/internal/bootstrap"
	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/server"
	"chambers-practice-be/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
