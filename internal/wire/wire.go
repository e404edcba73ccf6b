// Package wire provides dependency injection for the baton application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/baton/internal/adapters/sqlite"
	"github.com/example/baton/internal/app"
	"github.com/example/baton/internal/db"
	"github.com/example/baton/internal/ports/primary"
)

var (
	handoffService primary.HandoffService
	sessionService primary.SessionService
	once           sync.Once
)

// HandoffService returns the singleton HandoffService instance.
func HandoffService() primary.HandoffService {
	once.Do(initServices)
	return handoffService
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	handoffRepo := sqlite.NewHandoffRepository(database)
	sessionRepo := sqlite.NewSessionRepository(database)

	// Services (primary port implementations)
	handoffService = app.NewHandoffService(handoffRepo)
	sessionService = app.NewSessionService(sessionRepo)
}
