package di

import (
	"context"
	"fmt"
	"sync"

	"jobboard/internal/auth"
	"jobboard/internal/auth/config"
	"jobboard/internal/jobs"
	"jobboard/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Container owns module wiring and lifecycle: the Mongo handle and the
// signing secret come in through configuration at startup, never as ambient
// globals.
type Container struct {
	mu sync.RWMutex

	AuthModule *auth.Module
	JobsModule *jobs.Module

	MongoClient *mongo.Client
	MongoDB     *mongo.Database

	Config *config.Config
	Logger logger.Logger
}

// NewContainer creates an empty DI container
func NewContainer(log logger.Logger) *Container {
	return &Container{Logger: log}
}

// InitializeAuth initializes the authentication module
func (c *Container) InitializeAuth(client *mongo.Client, db *mongo.Database, cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoClient = client
	c.MongoDB = db
	c.Config = cfg

	authModule, err := auth.NewModule(db, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeJobs initializes the jobs module. The auth module must exist
// first because job routes hang off its gate.
func (c *Container) InitializeJobs() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before jobs module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("mongodb must be initialized before jobs module")
	}

	jobsModule, err := jobs.NewModule(c.MongoDB, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create jobs module: %w", err)
	}

	c.JobsModule = jobsModule
	return nil
}

// HealthCheck verifies the database connection is alive
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	client := c.MongoClient
	c.mu.RUnlock()

	if client == nil {
		return fmt.Errorf("mongodb client not initialized")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close releases container-held resources
func (c *Container) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect mongodb: %w", err)
		}
		c.MongoClient = nil
	}
	return nil
}
