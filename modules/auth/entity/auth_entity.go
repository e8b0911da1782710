package entity

import (
	"time"

	"github.com/google/uuid"
)

// Auth is the credential record. It is stored apart from the profile so
// password hashes never travel with profile reads.
type Auth struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Kind         string    `db:"kind"` // user | club
	CreatedAt    time.Time `db:"created_at"`
}

// OAuthState is a one-shot CSRF token for the Google login flow.
type OAuthState struct {
	State     string    `db:"state"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
