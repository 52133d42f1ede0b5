package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authhttp "jobboard/internal/auth/adapter/http"
	"jobboard/internal/auth/domain/repository"
	"jobboard/internal/auth/usecase"
	"jobboard/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockUsecase *mockAuthUsecase
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.mockUsecase = &mockAuthUsecase{}
}

// protectedApp builds an app with one gated route that echoes the identity
// the gate injected into the request context.
func (suite *AuthMiddlewareTestSuite) protectedApp(verifyUser bool) *fiber.App {
	app := fiber.New()
	middleware := authhttp.NewAuthMiddleware(suite.mockUsecase, "token", verifyUser)

	app.Get("/protected", middleware.Protect(), func(c *fiber.Ctx) error {
		userID, err := utils.GetUserIDFromContext(c.UserContext())
		require.NoError(suite.T(), err)
		email, err := utils.GetUserEmailFromContext(c.UserContext())
		require.NoError(suite.T(), err)
		return c.JSON(fiber.Map{"userID": userID, "email": email})
	})
	return app
}

func (suite *AuthMiddlewareTestSuite) TestProtect_NoCookie() {
	app := suite.protectedApp(false)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
	suite.mockUsecase.AssertNotCalled(suite.T(), "ValidateToken", mock.Anything, mock.Anything)
}

func (suite *AuthMiddlewareTestSuite) TestProtect_InvalidToken() {
	app := suite.protectedApp(false)
	suite.mockUsecase.On("ValidateToken", mock.Anything, "garbage").
		Return(nil, usecase.ErrTokenInvalid)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})

	resp, err := app.Test(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (suite *AuthMiddlewareTestSuite) TestProtect_InjectsIdentity() {
	app := suite.protectedApp(false)
	claims := &repository.Claims{UserID: "user-123", Email: "a@x.com"}
	suite.mockUsecase.On("ValidateToken", mock.Anything, "valid").Return(claims, nil)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "valid"})

	resp, err := app.Test(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	// Stateless gate: no store lookup
	suite.mockUsecase.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthMiddlewareTestSuite) TestProtect_VerifyUser_RejectsDeleted() {
	app := suite.protectedApp(true)
	claims := &repository.Claims{UserID: "ghost", Email: "ghost@x.com"}
	suite.mockUsecase.On("ValidateToken", mock.Anything, "valid").Return(claims, nil)
	suite.mockUsecase.On("GetUserByID", mock.Anything, "ghost").
		Return(nil, usecase.ErrUserNotFound)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "valid"})

	resp, err := app.Test(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
