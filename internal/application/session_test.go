// internal/application/session_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

func newTestSession(id *fakeIdentity, cs *fakeCustomers, cache *memCache, eff *fakeEffects, timeout time.Duration) *SessionManager {
	log := logger.Discard()
	profiles := NewProfileService(cs, &fakeStore{}, log)
	auth := NewAuthenticator(log, NewBackendStrategy(id, cs), NewLegacyStrategy(cs, true, log))
	svc := NewAuthService(id, cs, profiles, auth, log)
	return NewSessionManager(id, cs, cache, svc, eff, log, timeout)
}

func sessionFor(userID string) *domain.IdentitySession {
	return &domain.IdentitySession{AccessToken: "a", RefreshToken: "r", User: domain.IdentityUser{ID: userID}}
}

func TestSessionManager_Init(t *testing.T) {
	alice := &domain.Customer{ID: "u1", FullName: "Alice", PhoneNumber: "0711000001"}
	cachedBob, _ := json.Marshal(&domain.Customer{ID: "u2", FullName: "Bob"})

	tests := []struct {
		name         string
		getSession   func(ctx context.Context) (*domain.IdentitySession, error)
		getErr       error
		cached       []byte
		wantState    SessionState
		wantCustomer string
		wantCached   bool
	}{
		{
			name:         "Identity session with profile",
			getSession:   func(ctx context.Context) (*domain.IdentitySession, error) { return sessionFor("u1"), nil },
			wantState:    StateAuthenticated,
			wantCustomer: "u1",
		},
		{
			name:       "Profile fetch fails softly",
			getSession: func(ctx context.Context) (*domain.IdentitySession, error) { return sessionFor("u1"), nil },
			getErr:     errors.New("db down"),
			wantState:  StateAuthenticated,
		},
		{
			name:         "Cached customer fallback",
			cached:       cachedBob,
			wantState:    StateAuthenticated,
			wantCustomer: "u2",
			wantCached:   true,
		},
		{
			name:      "Corrupt cache is cleared",
			cached:    []byte("{not json"),
			wantState: StateUnauthenticated,
		},
		{
			name:      "Nobody signed in",
			wantState: StateUnauthenticated,
		},
		{
			name:       "Identity error",
			getSession: func(ctx context.Context) (*domain.IdentitySession, error) { return nil, errors.New("unreachable") },
			cached:     cachedBob,
			wantState:  StateError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := newFakeIdentity()
			id.getSession = tt.getSession
			cs := newFakeCustomers(alice)
			cs.getErr = tt.getErr
			cache := newMemCache()
			if tt.cached != nil {
				cache.data[CachedCustomerKey] = tt.cached
			}
			m := newTestSession(id, cs, cache, &fakeEffects{}, time.Second)
			defer m.Close()

			require.Equal(t, StateChecking, m.Snapshot().State)
			m.Init(context.Background())

			snap := m.Snapshot()
			assert.Equal(t, tt.wantState, snap.State)
			assert.False(t, snap.IsLoading)
			if tt.wantCustomer == "" {
				assert.Nil(t, snap.Customer)
			} else {
				require.NotNil(t, snap.Customer)
				assert.Equal(t, tt.wantCustomer, snap.Customer.ID)
			}
			assert.Equal(t, tt.wantCached, cache.has(CachedCustomerKey))
		})
	}
}

func TestSessionManager_InitTimeoutDropsLateResult(t *testing.T) {
	release := make(chan struct{})
	id := newFakeIdentity()
	id.getSession = func(ctx context.Context) (*domain.IdentitySession, error) {
		<-release
		return sessionFor("u1"), nil
	}
	cs := newFakeCustomers(&domain.Customer{ID: "u1"})
	m := newTestSession(id, cs, newMemCache(), &fakeEffects{}, 20*time.Millisecond)
	defer m.Close()

	m.Init(context.Background())
	snap := m.Snapshot()
	require.Equal(t, StateError, snap.State)
	assert.Equal(t, domain.ErrSessionCheckTimeout.Error(), snap.Error)

	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, StateError, m.Snapshot().State)
	assert.Nil(t, m.Customer())
}

func TestSessionManager_AuthEvents(t *testing.T) {
	id := newFakeIdentity()
	cs := newFakeCustomers(&domain.Customer{ID: "u1", FullName: "Alice"})
	cache := newMemCache()
	m := newTestSession(id, cs, cache, &fakeEffects{}, time.Second)
	defer m.Close()
	m.Init(context.Background())
	require.Equal(t, StateUnauthenticated, m.Snapshot().State)

	snaps := make(chan Snapshot, 4)
	unsubscribe := m.Subscribe(func(s Snapshot) { snaps <- s })
	defer unsubscribe()

	wait := func() Snapshot {
		select {
		case s := <-snaps:
			return s
		case <-time.After(time.Second):
			t.Fatal("no state change")
			return Snapshot{}
		}
	}

	id.events <- domain.AuthEvent{Type: domain.AuthSignedIn, Session: sessionFor("u1")}
	s := wait()
	assert.Equal(t, StateAuthenticated, s.State)
	require.NotNil(t, s.Customer)
	assert.Equal(t, "u1", s.Customer.ID)
	assert.True(t, cache.has(CachedCustomerKey))

	id.events <- domain.AuthEvent{Type: domain.AuthSignedOut}
	s = wait()
	assert.Equal(t, StateUnauthenticated, s.State)
	assert.False(t, cache.has(CachedCustomerKey))
}

func TestSessionManager_Login(t *testing.T) {
	legacy := &domain.Customer{ID: "u9", FullName: "Carol", PhoneNumber: "0712345678", LegacyPassword: "secret"}

	tests := []struct {
		name      string
		password  string
		wantErr   error
		wantState SessionState
		wantRoute string
		wantToast ports.ToastKind
	}{
		{
			name:      "Backend fails, legacy succeeds",
			password:  "secret",
			wantState: StateAuthenticated,
			wantRoute: "/dashboard",
			wantToast: ports.ToastSuccess,
		},
		{
			name:      "Every strategy fails",
			password:  "wrong",
			wantErr:   domain.ErrInvalidCredentials,
			wantState: StateUnauthenticated,
			wantToast: ports.ToastError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := newFakeIdentity()
			id.signIn = func(ctx context.Context, email, password string) (*domain.IdentitySession, error) {
				return nil, errors.New("invalid login credentials")
			}
			cache := newMemCache()
			eff := &fakeEffects{}
			m := newTestSession(id, newFakeCustomers(legacy), cache, eff, time.Second)
			defer m.Close()
			m.Init(context.Background())

			err := m.Login(context.Background(), "0712345678", tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "invalid phone number or password", m.Snapshot().Error)
			} else {
				require.NoError(t, err)
			}
			snap := m.Snapshot()
			assert.Equal(t, tt.wantState, snap.State)
			assert.False(t, snap.Busy)
			assert.Equal(t, tt.wantRoute, eff.lastRoute())
			assert.Equal(t, tt.wantToast, eff.lastToast().kind)
			assert.Equal(t, tt.wantErr == nil, cache.has(CachedCustomerKey))
		})
	}
}

func TestSessionManager_Logout(t *testing.T) {
	id := newFakeIdentity()
	id.getSession = func(ctx context.Context) (*domain.IdentitySession, error) { return sessionFor("u1"), nil }
	cache := newMemCache()
	eff := &fakeEffects{}
	m := newTestSession(id, newFakeCustomers(&domain.Customer{ID: "u1"}), cache, eff, time.Second)
	defer m.Close()
	m.Init(context.Background())
	m.SetCustomer(context.Background(), &domain.Customer{ID: "u1", FullName: "Renamed"})
	require.True(t, cache.has(CachedCustomerKey))
	assert.Equal(t, "Renamed", m.Customer().FullName)

	m.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	assert.False(t, cache.has(CachedCustomerKey))
	assert.Equal(t, "/login", eff.lastRoute())
	assert.Equal(t, 1, id.signOut)
}
