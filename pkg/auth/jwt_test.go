// pkg/auth/jwt_test.go
package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssuer_IssueAndValidate(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour, 24*time.Hour)

	pair, err := issuer.Issue("0712345678@doorrush.app", "user-1")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.RefreshID == "" {
		t.Fatalf("Issue() pair = %+v, want non-empty tokens", pair)
	}

	claims, err := issuer.Validate(pair.AccessToken, AccessToken)
	if err != nil {
		t.Fatalf("Validate(access) unexpected error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "0712345678@doorrush.app" {
		t.Errorf("Validate(access) claims = %+v", claims)
	}

	refresh, err := issuer.Validate(pair.RefreshToken, RefreshToken)
	if err != nil {
		t.Fatalf("Validate(refresh) unexpected error: %v", err)
	}
	if refresh.ID != pair.RefreshID {
		t.Errorf("refresh jti = %q, want %q", refresh.ID, pair.RefreshID)
	}
}

func TestIssuer_Validate(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour, 24*time.Hour)
	pair, _ := issuer.Issue("a@doorrush.app", "user-1")

	expired := NewIssuer("test-secret", time.Hour, 24*time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue("a@doorrush.app", "user-1")

	tests := []struct {
		name    string
		issuer  *Issuer
		token   string
		kind    string
		wantErr bool
		errIs   error
	}{
		{name: "Access token as access", issuer: issuer, token: pair.AccessToken, kind: AccessToken},
		{name: "Refresh token used as access", issuer: issuer, token: pair.RefreshToken, kind: AccessToken, wantErr: true, errIs: ErrWrongTokenType},
		{name: "Other secret", issuer: NewIssuer("other", time.Hour, time.Hour), token: pair.AccessToken, kind: AccessToken, wantErr: true},
		{name: "Expired access token", issuer: issuer, token: old.AccessToken, kind: AccessToken, wantErr: true},
		{name: "Garbage", issuer: issuer, token: "not-a-token", kind: AccessToken, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Validate(tt.token, tt.kind)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Errorf("Validate() error = %v, want %v", err, tt.errIs)
			}
		})
	}
}
