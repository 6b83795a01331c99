package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"socialnetwork-backend/internal/config"
	"socialnetwork-backend/internal/infrastructure/database"

	personHandler "socialnetwork-backend/internal/domains/person/handler"
	personRepo "socialnetwork-backend/internal/domains/person/repository"
	personService "socialnetwork-backend/internal/domains/person/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application; it is the root of
// the dependency graph. All entries are singletons for the process
// lifetime.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB

	// Repository layer (data access)
	PersonRepo personRepo.PersonRepository

	// Service layer (business logic)
	PersonService personService.PersonService

	// Handler layer (HTTP)
	PersonHandler *personHandler.PersonHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the full dependency graph in order:
// config -> database -> store reset/seed -> repository -> service -> handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration (depends on nothing)
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := c.DB.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Step 3: repositories
	c.PersonRepo = personRepo.NewPostgresRepository(c.DB.Pool)

	// Step 4: recreate the store from the fixed seed set. Existing data is
	// discarded on every start - development convenience, not production
	// persistence.
	if err := c.PersonRepo.Reset(connectCtx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to seed people store: %w", err)
	}

	// Step 5: services
	c.PersonService = personService.NewPersonService(c.PersonRepo)

	// Step 6: handlers
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connection closed")
	}
}
