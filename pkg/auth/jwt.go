// pkg/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

var ErrWrongTokenType = errors.New("wrong token type")

type Claims struct {
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Pair is a freshly issued access/refresh token pair. RefreshID is the jti of
// the refresh token, used to revoke it on sign-out.
type Pair struct {
	AccessToken      string
	RefreshToken     string
	RefreshID        string
	ExpiresAt        time.Time
	RefreshExpiresAt time.Time
}

func (i *Issuer) Issue(email, userID string) (*Pair, error) {
	now := i.now()
	access, accessExp, _, err := i.sign(email, userID, AccessToken, now, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, refreshID, err := i.sign(email, userID, RefreshToken, now, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshID:        refreshID,
		ExpiresAt:        accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (i *Issuer) sign(email, userID, kind string, now time.Time, ttl time.Duration) (string, time.Time, string, error) {
	exp := now.Add(ttl)
	id := uuid.NewString()
	claims := Claims{
		Email:     email,
		UserID:    userID,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	return signed, exp, id, err
}

// Validate parses tokenStr and checks it is a token of the given kind.
func (i *Issuer) Validate(tokenStr, kind string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != kind {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
