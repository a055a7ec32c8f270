package main

import (
	"net/http"

	"github.com/jessism/Fridgy-Backend-sub003/config"
	"github.com/jessism/Fridgy-Backend-sub003/database"
	"github.com/jessism/Fridgy-Backend-sub003/logger"
	"github.com/jessism/Fridgy-Backend-sub003/routes"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Initialize DB
	database.InitDB()

	// Setup Router
	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
