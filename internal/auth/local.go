package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sellora/sellora/internal/config"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
	"golang.org/x/crypto/bcrypt"
)

type localAuth struct {
	AuthConfig config.AuthConfig
}

// NewLocalAuth creates a provider that issues and validates HS256 tokens
// locally. Used for development and self-hosted deployments.
func NewLocalAuth(cfg *config.Configuration) Provider {
	return &localAuth{
		AuthConfig: cfg.Auth,
	}
}

func (l *localAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

// GenerateToken issues a signed token for a user scoped to a tenant
func (l *localAuth) GenerateToken(userID, tenantID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":       userID,
		"tenant_id": tenantID,
		"jti":       types.GenerateUUID(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(l.AuthConfig.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign token").
			Mark(ierr.ErrSystem)
	}

	return signed, nil
}

// ValidateToken validates the token and extracts the user and tenant IDs
func (l *localAuth) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ierr.NewError("token is required").
			Mark(ierr.ErrPermissionDenied)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewErrorf("unexpected signing method: %v", token.Header["alg"]).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(l.AuthConfig.Secret), nil
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
	tenantID, _ := mapClaims["tenant_id"].(string)
	if userID == "" {
		return nil, ierr.NewError("token is missing subject").
			Mark(ierr.ErrPermissionDenied)
	}

	return &Claims{UserID: userID, TenantID: tenantID}, nil
}

// HashPassword hashes a password for storage
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	return string(hashed), nil
}

// CheckPassword compares a password with its stored hash
func CheckPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid credentials").
			Mark(ierr.ErrPermissionDenied)
	}
	return nil
}
