package jobs

import (
	"fmt"

	jobshttp "jobboard/internal/jobs/adapter/http"
	"jobboard/internal/jobs/adapter/persistence/mongodb"
	"jobboard/internal/jobs/domain/repository"
	"jobboard/internal/jobs/usecase"
	"jobboard/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module represents the jobs collection module
type Module struct {
	repository repository.JobRepository
	usecase    usecase.JobUsecaseInterface
	handler    *jobshttp.JobHTTPHandler
}

// NewModule wires the jobs module: repository, usecase and HTTP handler.
func NewModule(db *mongo.Database, log logger.Logger) (*Module, error) {
	jobRepo, err := mongodb.NewMongoJobRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create job repository: %w", err)
	}

	jobUsecase := usecase.NewJobUsecase(jobRepo)
	handler := jobshttp.NewJobHTTPHandler(jobUsecase, log)

	return &Module{
		repository: jobRepo,
		usecase:    jobUsecase,
		handler:    handler,
	}, nil
}

// RegisterRoutes registers job routes with the provided router. gate is the
// auth middleware protecting the owned-mutation paths.
func (m *Module) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	m.handler.RegisterRoutes(router, gate)
}

// Usecase returns the job usecase for external access
func (m *Module) Usecase() usecase.JobUsecaseInterface {
	return m.usecase
}
