package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/book-library/internal/config"     // Internal config loader
	"github.com/iliyamo/book-library/internal/database"   // MySQL connection helper
	"github.com/iliyamo/book-library/internal/handler"    // HTTP handlers
	"github.com/iliyamo/book-library/internal/repository" // Credential and profile stores
	"github.com/iliyamo/book-library/internal/router"     // Route registration
	"github.com/iliyamo/book-library/internal/service"    // Auth orchestration
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	details := repository.NewUserDetailsRepo(db)
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.BcryptCost, users, details)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, authSvc), config.NewRedisClient())

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
