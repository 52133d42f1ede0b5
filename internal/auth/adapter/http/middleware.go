package http

import (
	"jobboard/internal/auth/usecase"
	"jobboard/internal/shared/contextkeys"
	"jobboard/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AuthMiddleware provides the authentication gate for Fiber pipelines.
type AuthMiddleware struct {
	usecase    usecase.AuthUsecaseInterface
	cookieName string
	// verifyUser trades a store lookup per request for freshness: a user
	// deleted after token issuance is rejected instead of riding out expiry.
	verifyUser bool
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface, cookieName string, verifyUser bool) *AuthMiddleware {
	return &AuthMiddleware{
		usecase:    uc,
		cookieName: cookieName,
		verifyUser: verifyUser,
	}
}

// CORS builds the CORS middleware for the fixed origin allow-list, with
// credentials enabled so the session cookie crosses origins.
func (m *AuthMiddleware) CORS(allowedOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	})
}

// RequestID middleware
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// Protect returns the gate middleware: it reads the session cookie, verifies
// the token, and injects {id, email} into the request context, or rejects
// with 401 before any handler runs.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(m.cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		claims, err := m.usecase.ValidateToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired session",
			})
		}

		if m.verifyUser {
			if _, err := m.usecase.GetUserByID(c.Context(), claims.UserID); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid or expired session",
				})
			}
		}

		ctx := c.UserContext()
		ctx = utils.WithUserID(ctx, claims.UserID)
		ctx = utils.WithUserEmail(ctx, claims.Email)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
