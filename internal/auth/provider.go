package auth

import (
	"context"

	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/types"
)

// Claims are the identity facts extracted from a validated token
type Claims struct {
	UserID   string
	TenantID string
}

// Provider validates bearer tokens and resolves them to tenant-scoped claims
type Provider interface {
	GetProvider() types.AuthProvider
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// NewProvider returns the auth provider selected by configuration
func NewProvider(cfg *config.Configuration) Provider {
	switch cfg.Auth.Provider {
	case types.AuthProviderSupabase:
		return NewSupabaseAuth(cfg)
	default:
		return NewLocalAuth(cfg)
	}
}
