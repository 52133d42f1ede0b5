package auth

import (
	"fmt"

	authhttp "jobboard/internal/auth/adapter/http"
	"jobboard/internal/auth/adapter/persistence/mongodb"
	"jobboard/internal/auth/adapter/security"
	"jobboard/internal/auth/config"
	"jobboard/internal/auth/domain/repository"
	"jobboard/internal/auth/usecase"
	"jobboard/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module represents the complete authentication module
type Module struct {
	repository repository.UserRepository
	tokenSvc   repository.TokenService
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	config     *config.Config
}

// NewModule wires the authentication module: repository, hasher, token
// service, usecase and HTTP handler.
func NewModule(db *mongo.Database, cfg *config.Config, log logger.Logger) (*Module, error) {
	userRepo, err := mongodb.NewMongoUserRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, security.NewBcryptHasher(), tokenSvc)

	cookies := authhttp.NewSessionCookieManager(
		cfg.CookieName,
		cfg.CookiePath,
		cfg.SessionTTL,
		cfg.IsProduction(),
	)

	handler := authhttp.NewAuthHTTPHandler(authUsecase, cookies, log)

	return &Module{
		repository: userRepo,
		tokenSvc:   tokenSvc,
		usecase:    authUsecase,
		handler:    handler,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (m *Module) RegisterRoutes(router fiber.Router) {
	m.handler.RegisterRoutes(router, m.Middleware())
}

// Usecase returns the auth usecase for external access
func (m *Module) Usecase() usecase.AuthUsecaseInterface {
	return m.usecase
}

// Middleware returns the auth gate configured from the module settings
func (m *Module) Middleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(m.usecase, m.config.CookieName, m.config.VerifyUserOnRequest)
}
