package testutil

import (
	"context"

	"github.com/sellora/sellora/internal/types"
)

// DefaultUserID is the user injected into test contexts
const DefaultUserID = "00000000-0000-0000-0000-000000000001"

// SetupContext returns a context carrying the default tenant and user,
// mirroring what the auth middleware sets on real requests.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetTenantID(ctx, types.DefaultTenantID)
	ctx = types.SetUserID(ctx, DefaultUserID)
	return ctx
}
