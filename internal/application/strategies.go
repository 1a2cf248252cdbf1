// internal/application/strategies.go
package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

const identityEmailDomain = "doorrush.app"

// PhoneToEmail builds the synthetic email the identity service keys
// credentials by.
func PhoneToEmail(phone string) string {
	return strings.TrimSpace(phone) + "@" + identityEmailDomain
}

type StrategyKind string

const (
	StrategyBackend StrategyKind = "backend"
	StrategyLegacy  StrategyKind = "legacy"
)

// CredentialStrategy verifies a phone/password pair and returns the customer
// it belongs to.
type CredentialStrategy interface {
	Kind() StrategyKind
	Verify(ctx context.Context, phone, password string) (*domain.Customer, error)
}

type BackendStrategy struct {
	identity  ports.IdentityPort
	customers ports.CustomerRepositoryPort
}

func NewBackendStrategy(identity ports.IdentityPort, customers ports.CustomerRepositoryPort) *BackendStrategy {
	return &BackendStrategy{identity: identity, customers: customers}
}

func (s *BackendStrategy) Kind() StrategyKind { return StrategyBackend }

func (s *BackendStrategy) Verify(ctx context.Context, phone, password string) (*domain.Customer, error) {
	session, err := s.identity.SignInWithPassword(ctx, PhoneToEmail(phone), password)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetCustomer(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer profile %s: %w", session.User.ID, domain.ErrNotFound)
	}
	return customer, nil
}

// LegacyStrategy checks the password column of the customers table directly.
// Whether that column holds a hash or plaintext is unknown, so it is compared
// as stored and every use is logged for security review.
type LegacyStrategy struct {
	customers ports.CustomerRepositoryPort
	enabled   bool
	log       *logger.Logger
}

func NewLegacyStrategy(customers ports.CustomerRepositoryPort, enabled bool, log *logger.Logger) *LegacyStrategy {
	return &LegacyStrategy{customers: customers, enabled: enabled, log: log}
}

func (s *LegacyStrategy) Kind() StrategyKind { return StrategyLegacy }

func (s *LegacyStrategy) Verify(ctx context.Context, phone, password string) (*domain.Customer, error) {
	if !s.enabled {
		return nil, domain.ErrLegacyLoginDisabled
	}
	customer, err := s.customers.FindCustomerByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.LegacyPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}
	s.log.Warn("auth.legacy_compare", logger.Fields{"customer_id": customer.ID, "review": "stored password compared as-is"})
	if subtle.ConstantTimeCompare([]byte(customer.LegacyPassword), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	return customer, nil
}

// Authenticator runs its strategies in order and stops at the first success.
type Authenticator struct {
	strategies []CredentialStrategy
	log        *logger.Logger
}

func NewAuthenticator(log *logger.Logger, strategies ...CredentialStrategy) *Authenticator {
	return &Authenticator{strategies: strategies, log: log}
}

func (a *Authenticator) Authenticate(ctx context.Context, phone, password string) (*domain.Customer, StrategyKind, error) {
	if strings.TrimSpace(phone) == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	var errs []error
	for _, s := range a.strategies {
		customer, err := s.Verify(ctx, phone, password)
		if err == nil {
			return customer, s.Kind(), nil
		}
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}
		a.log.Debug("auth.strategy_failed", logger.Fields{"strategy": string(s.Kind()), "reason": err.Error()})
		errs = append(errs, fmt.Errorf("%s: %w", s.Kind(), err))
	}
	return nil, "", fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, errors.Join(errs...))
}
