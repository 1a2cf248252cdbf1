// internal/identity/service.go
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/pkg/auth"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidLogin   = errors.New("invalid login credentials")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionRevoked = errors.New("session revoked or expired")
	ErrWeakPassword   = errors.New("password must be at least 6 characters")
	ErrEmailRequired  = errors.New("email is required")
)

const minPasswordLen = 6

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Service is the credential authority behind the customer app: it owns
// password hashes and issues and revokes token pairs.
type Service struct {
	store  *Store
	issuer *auth.Issuer
	log    *logger.Logger
	now    func() time.Time
}

func NewService(store *Store, issuer *auth.Issuer, log *logger.Logger) *Service {
	return &Service{store: store, issuer: issuer, log: log, now: time.Now}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	cred := &Credential{ID: uuid.NewString(), Email: email, PasswordHash: string(hash)}
	if err := s.store.CreateCredential(ctx, cred); err != nil {
		return nil, err
	}
	s.log.Info("identity.sign_up", logger.Fields{"user_id": cred.ID})
	return s.issue(ctx, cred)
}

func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	cred, err := s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidLogin
	}
	return s.issue(ctx, cred)
}

func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	cred, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &User{ID: cred.ID, Email: cred.Email}, nil
}

// RefreshSession rotates a refresh token: the presented one is revoked and a
// new pair is issued.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := s.issuer.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil, ErrSessionRevoked
	}
	if _, err := s.store.ActiveSession(ctx, claims.ID, s.now()); err != nil {
		return nil, err
	}
	cred, err := s.store.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.store.RevokeSession(ctx, claims.ID, s.now()); err != nil {
		return nil, err
	}
	return s.issue(ctx, cred)
}

func (s *Service) UpdatePassword(ctx context.Context, userID, password string) error {
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePasswordHash(ctx, userID, string(hash))
}

// SignOut revokes the refresh token. Tokens that no longer validate are
// already unusable and are ignored.
func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	claims, err := s.issuer.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil
	}
	s.log.Info("identity.sign_out", logger.Fields{"user_id": claims.UserID})
	return s.store.RevokeSession(ctx, claims.ID, s.now())
}

func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if err := s.store.DeleteCredential(ctx, userID); err != nil {
		return err
	}
	s.log.Info("identity.delete_user", logger.Fields{"user_id": userID})
	return nil
}

// ValidateAccess checks a bearer access token and returns the user it names.
func (s *Service) ValidateAccess(token string) (*auth.Claims, error) {
	return s.issuer.Validate(token, auth.AccessToken)
}

func (s *Service) issue(ctx context.Context, cred *Credential) (*Session, error) {
	pair, err := s.issuer.Issue(cred.Email, cred.ID)
	if err != nil {
		return nil, err
	}
	rs := &RefreshSession{ID: pair.RefreshID, UserID: cred.ID, ExpiresAt: pair.RefreshExpiresAt}
	if err := s.store.CreateSession(ctx, rs); err != nil {
		return nil, err
	}
	return &Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		User:         User{ID: cred.ID, Email: cred.Email},
	}, nil
}
