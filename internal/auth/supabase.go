package auth

import (
	"context"
	"log"

	"github.com/golang-jwt/jwt/v4"
	supabase "github.com/nedpals/supabase-go"
	"github.com/sellora/sellora/internal/config"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

type supabaseAuth struct {
	AuthConfig config.AuthConfig
	client     *supabase.Client
}

// NewSupabaseAuth creates a provider that validates tokens issued by a
// Supabase project. Tokens are verified locally against the project JWT
// secret; the admin client is the fallback when the secret is not configured.
func NewSupabaseAuth(cfg *config.Configuration) Provider {
	client := supabase.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	if client == nil {
		log.Fatalf("failed to create Supabase client")
	}

	return &supabaseAuth{
		AuthConfig: cfg.Auth,
		client:     client,
	}
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

// ValidateToken validates the token and extracts the user and tenant IDs
func (s *supabaseAuth) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ierr.NewError("token is required").
			Mark(ierr.ErrPermissionDenied)
	}

	if s.AuthConfig.Secret != "" {
		return s.validateWithSecret(tokenString)
	}
	return s.validateWithAdminAPI(ctx, tokenString)
}

// validateWithSecret verifies the token signature against the Supabase JWT secret
func (s *supabaseAuth) validateWithSecret(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewErrorf("unexpected signing method: %v", token.Header["alg"]).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.AuthConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ierr.NewError("invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, _ := mapClaims["sub"].(string)
	if userID == "" {
		return nil, ierr.NewError("token is missing subject").
			Mark(ierr.ErrPermissionDenied)
	}

	claims := &Claims{UserID: userID}
	if appMetadata, ok := mapClaims["app_metadata"].(map[string]interface{}); ok {
		if tenantID, ok := appMetadata["tenant_id"].(string); ok {
			claims.TenantID = tenantID
		}
	}

	return claims, nil
}

// validateWithAdminAPI resolves the token through the Supabase admin API
func (s *supabaseAuth) validateWithAdminAPI(ctx context.Context, tokenString string) (*Claims, error) {
	user, err := s.client.Auth.User(ctx, tokenString)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}

	claims := &Claims{UserID: user.ID}
	if tenantID, ok := user.AppMetadata["tenant_id"].(string); ok {
		claims.TenantID = tenantID
	}

	return claims, nil
}
