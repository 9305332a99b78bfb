package auth

import (
	"context"
	"testing"

	"github.com/sellora/sellora/internal/config"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalProvider(secret string) *localAuth {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = secret
	return NewLocalAuth(cfg).(*localAuth)
}

func TestLocalAuthTokenRoundTrip(t *testing.T) {
	provider := newLocalProvider("test-secret")

	token, err := provider.GenerateToken("user_1", "tenant_1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "tenant_1", claims.TenantID)
}

func TestLocalAuthRejectsForeignToken(t *testing.T) {
	issuer := newLocalProvider("secret-a")
	validator := newLocalProvider("secret-b")

	token, err := issuer.GenerateToken("user_1", "tenant_1")
	require.NoError(t, err)

	_, err = validator.ValidateToken(context.Background(), token)
	assert.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}

func TestLocalAuthRejectsEmptyToken(t *testing.T) {
	provider := newLocalProvider("test-secret")

	_, err := provider.ValidateToken(context.Background(), "")
	assert.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}

func TestLocalAuthProviderSelection(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Provider = types.AuthProviderLocal

	provider := NewProvider(cfg)
	assert.Equal(t, types.AuthProviderLocal, provider.GetProvider())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("opensesame")
	require.NoError(t, err)
	require.NotEqual(t, "opensesame", hash)

	assert.NoError(t, CheckPassword("opensesame", hash))

	err = CheckPassword("wrong", hash)
	assert.Error(t, err)
	assert.True(t, ierr.IsPermissionDenied(err))
}
