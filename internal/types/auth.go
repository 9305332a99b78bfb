package types

// AuthProvider identifies the authentication backend in use
type AuthProvider string

const (
	// AuthProviderLocal issues and validates tokens locally
	AuthProviderLocal AuthProvider = "local"
	// AuthProviderSupabase validates tokens issued by a Supabase project
	AuthProviderSupabase AuthProvider = "supabase"
)
