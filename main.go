package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jugnuu/themis-pos/alerts"
	"github.com/jugnuu/themis-pos/config"
	"github.com/jugnuu/themis-pos/models"
	"github.com/jugnuu/themis-pos/router"
	"github.com/jugnuu/themis-pos/utils"
)

func main() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := alerts.NewHub()
	sessions := utils.NewSessionManager(cfg.SessionSecret, 24*time.Hour)

	r := router.SetupRouter(db, hub, sessions, cfg.AdminPasswordHash)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
