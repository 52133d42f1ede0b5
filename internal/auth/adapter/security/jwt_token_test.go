package security_test

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/auth/adapter/security"
	"jobboard/internal/auth/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	config  *config.Config
	service *security.JWTokenService
}

func (suite *JWTTestSuite) SetupTest() {
	suite.config = &config.Config{
		JWTSecretKey: "test-secret-key-32-characters-long-12345",
		JWTIssuer:    "test-issuer",
		SessionTTL:   7 * 24 * time.Hour,
	}

	service, err := security.NewJWTokenService(suite.config)
	require.NoError(suite.T(), err)
	suite.service = service
}

func (suite *JWTTestSuite) TestNewJWTokenService_ValidationErrors() {
	testCases := []struct {
		name         string
		modifyConfig func(*config.Config)
		expectedErr  string
	}{
		{
			name: "empty secret key",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTSecretKey = ""
			},
			expectedErr: "jwt secret key cannot be empty",
		},
		{
			name: "empty issuer",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTIssuer = ""
			},
			expectedErr: "jwt issuer cannot be empty",
		},
		{
			name: "zero TTL",
			modifyConfig: func(cfg *config.Config) {
				cfg.SessionTTL = 0
			},
			expectedErr: "session TTL must be positive",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			cfg := *suite.config // Copy
			tc.modifyConfig(&cfg)

			service, err := security.NewJWTokenService(&cfg)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), service)
			assert.Contains(suite.T(), err.Error(), tc.expectedErr)
		})
	}
}

func (suite *JWTTestSuite) TestIssue_Success() {
	// Arrange
	ctx := context.Background()
	userID := "user-123"
	email := "test@example.com"

	// Act
	tokenString, err := suite.service.Issue(ctx, userID, email)

	// Assert
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(suite.config.JWTSecretKey), nil
	})
	require.NoError(suite.T(), err)
	assert.True(suite.T(), token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), userID, claims["userID"])
	assert.Equal(suite.T(), email, claims["email"])
	assert.Equal(suite.T(), suite.config.JWTIssuer, claims["iss"])
}

func (suite *JWTTestSuite) TestVerify_Success() {
	// Arrange
	ctx := context.Background()
	tokenString, err := suite.service.Issue(ctx, "user-123", "test@example.com")
	require.NoError(suite.T(), err)

	// Act
	claims, err := suite.service.Verify(ctx, tokenString)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-123", claims.UserID)
	assert.Equal(suite.T(), "test@example.com", claims.Email)
	assert.Equal(suite.T(), suite.config.JWTIssuer, claims.Issuer)
}

func (suite *JWTTestSuite) TestVerify_DifferentSecret() {
	// Arrange
	ctx := context.Background()

	differentConfig := *suite.config
	differentConfig.JWTSecretKey = "different-secret-key-32-chars-long"
	differentService, err := security.NewJWTokenService(&differentConfig)
	require.NoError(suite.T(), err)

	tokenString, err := differentService.Issue(ctx, "user-123", "test@example.com")
	require.NoError(suite.T(), err)

	// Act
	claims, err := suite.service.Verify(ctx, tokenString)

	// Assert
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Equal(suite.T(), security.ErrTokenSignatureInvalid, err)
}

func (suite *JWTTestSuite) TestVerify_ExpiredToken() {
	// Arrange
	ctx := context.Background()

	shortConfig := *suite.config
	shortConfig.SessionTTL = 1 * time.Millisecond
	shortService, err := security.NewJWTokenService(&shortConfig)
	require.NoError(suite.T(), err)

	tokenString, err := shortService.Issue(ctx, "user-123", "test@example.com")
	require.NoError(suite.T(), err)

	time.Sleep(10 * time.Millisecond)

	// Act
	claims, err := shortService.Verify(ctx, tokenString)

	// Assert
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
	assert.Equal(suite.T(), security.ErrTokenExpired, err)
}

func (suite *JWTTestSuite) TestVerify_MalformedTokens() {
	ctx := context.Background()

	testCases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"invalid format", "invalid.token.format"},
		{"malformed jwt", "header.payload"},
		{"random string", "not-a-jwt-token"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			claims, err := suite.service.Verify(ctx, tc.token)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), claims)
			assert.Equal(suite.T(), security.ErrTokenInvalid, err)
		})
	}
}

func (suite *JWTTestSuite) TestIssueAndVerify_RoundTrip() {
	// Arrange
	ctx := context.Background()

	// Act
	tokenString, err := suite.service.Issue(ctx, "user-123", "test@example.com")
	require.NoError(suite.T(), err)

	claims, err := suite.service.Verify(ctx, tokenString)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-123", claims.UserID)
	assert.Equal(suite.T(), "test@example.com", claims.Email)
}

func TestJWTTestSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}

func BenchmarkIssue(b *testing.B) {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key-32-characters-long-12345",
		JWTIssuer:    "test-issuer",
		SessionTTL:   7 * 24 * time.Hour,
	}
	service, _ := security.NewJWTokenService(cfg)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.Issue(ctx, "user-123", "test@example.com")
	}
}
