// Package session owns authentication state for the whole engine: exactly
// one Store exists per process, and every read of "current user" goes
// through it. Credential persistence sits behind a small interface so the
// keychain-backed production store can be swapped for an in-memory one in
// tests.
package session

import (
	"context"

	"jobconnect-client/internal/domain"
)

// Credentials is the persisted pair: opaque bearer token plus the account
// record it belongs to. The two are saved and cleared together, never
// independently.
type Credentials struct {
	Token string
	User  *domain.UserSummary
}

func (c Credentials) Present() bool {
	return c.Token != "" && c.User != nil
}

type CredentialStore interface {
	// Token is the cheap per-request read the HTTP client performs. Absent
	// credential is ("", nil), not an error.
	Token() (string, error)

	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, c Credentials) error
	// SaveUser overwrites only the account record; the token is untouched.
	SaveUser(ctx context.Context, u *domain.UserSummary) error
	// Clear removes token and user together. Idempotent.
	Clear(ctx context.Context) error
}
