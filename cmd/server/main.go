package main

import (
	"log"

	"github.com/joho/godotenv"

	"edarec/internal"
	"edarec/internal/annotator"
	"edarec/internal/api"
	"edarec/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := internal.NewDefaultLogger()
	an := annotator.New(cfg.Annotator.Parallelism, logger)
	server := api.NewServer(an, logger)

	log.Println("Starting edarec annotation API on http://localhost:" + cfg.Server.Port)
	log.Fatal(server.ListenAndServe(cfg.Server.Port))
}
