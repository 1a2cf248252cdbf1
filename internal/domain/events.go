// internal/domain/events.go
package domain

import (
	"encoding/json"
	"time"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Change is one row-level event from the realtime feed. Record and OldRecord
// hold the row as JSON.
type Change struct {
	Table     string          `json:"table"`
	Type      ChangeType      `json:"type"`
	Record    json.RawMessage `json:"record,omitempty"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
}

// Filter restricts a subscription to rows whose Column equals Value.
// The zero Filter matches every row.
type Filter struct {
	Column string
	Value  string
}

type AuthEventType string

const (
	AuthSignedIn       AuthEventType = "SIGNED_IN"
	AuthTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	AuthSignedOut      AuthEventType = "SIGNED_OUT"
	AuthUserUpdated    AuthEventType = "USER_UPDATED"
)

type AuthEvent struct {
	Type    AuthEventType
	Session *IdentitySession
}

type IdentityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type IdentitySession struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         IdentityUser `json:"user"`
}

func (s *IdentitySession) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
