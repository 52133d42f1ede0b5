package utils_test

import (
	"context"
	"testing"

	"jobboard/internal/shared/utils"

	"github.com/stretchr/testify/assert"
)

func TestUserIDRoundTrip(t *testing.T) {
	ctx := utils.WithUserID(context.Background(), "user-123")

	got, err := utils.GetUserIDFromContext(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "user-123", got)
	assert.True(t, utils.HasUserID(ctx))
}

func TestGetUserID_Missing(t *testing.T) {
	_, err := utils.GetUserIDFromContext(context.Background())

	assert.ErrorIs(t, err, utils.ErrUserIDNotFound)
	assert.False(t, utils.HasUserID(context.Background()))
}

func TestGetUserIDOrDefault(t *testing.T) {
	assert.Equal(t, "anonymous", utils.GetUserIDOrDefault(context.Background(), "anonymous"))

	ctx := utils.WithUserID(context.Background(), "user-123")
	assert.Equal(t, "user-123", utils.GetUserIDOrDefault(ctx, "anonymous"))
}

func TestUserEmailRoundTrip(t *testing.T) {
	ctx := utils.WithUserEmail(context.Background(), "a@b.com")

	got, err := utils.GetUserEmailFromContext(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", got)

	_, err = utils.GetUserEmailFromContext(context.Background())
	assert.ErrorIs(t, err, utils.ErrUserEmailNotFound)
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := utils.WithRequestID(context.Background(), "req-1")

	got, err := utils.GetRequestIDFromContext(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "req-1", got)

	_, err = utils.GetRequestIDFromContext(context.Background())
	assert.ErrorIs(t, err, utils.ErrRequestIDNotFound)
}
