package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"               // Optional .env loader for local development
	"github.com/labstack/echo/v4"            // Echo web framework
	"github.com/labstack/echo/v4/middleware" // Echo middleware (request log, panic recovery)

	"github.com/iliyamo/book-manager/internal/config"     // Internal config loader
	"github.com/iliyamo/book-manager/internal/database"   // Internal database pool
	"github.com/iliyamo/book-manager/internal/handler"    // Internal HTTP handlers
	"github.com/iliyamo/book-manager/internal/repository" // Internal data access layer
	"github.com/iliyamo/book-manager/internal/router"     // Internal router setup
)

// listenAddr is fixed; changing the binding requires a code change.
const listenAddr = "127.0.0.1:3000"

func main() {
	_ = godotenv.Load() // Load .env if present; real environment variables win

	cfg := config.Load() // Load environment config; fatal if DATABASE_URL is missing

	db, err := database.Open(cfg.DatabaseURL) // Build the shared connection pool
	if err != nil {                           // Pool establishment failure is fatal at startup
		log.Fatalf("database: %v", err)
	}

	books := handler.NewBookHandler(repository.NewBookRepo(db)) // Wire pool -> repository -> handler

	e := echo.New()                 // Create Echo instance
	e.Use(middleware.Logger())      // Per-request logging
	e.Use(middleware.Recover())     // Handler panics become 500s instead of crashing the process
	router.RegisterRoutes(e, books) // Register application routes

	log.Printf("listening on %s", listenAddr) // Print startup info

	if err := e.Start(listenAddr); err != nil { // Start HTTP server; serve forever
		log.Fatal(err) // Log and exit if bind or serve fails
	}
}
