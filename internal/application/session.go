// internal/application/session.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

const CachedCustomerKey = "doorrush:customer"

// Haptic patterns in milliseconds.
var (
	HapticSuccess = []int{50}
	HapticError   = []int{100, 50, 100}
	HapticTap     = []int{30}
)

type SessionState string

const (
	StateChecking        SessionState = "checking"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
	StateError           SessionState = "error"
)

type Snapshot struct {
	State     SessionState     `json:"state"`
	Customer  *domain.Customer `json:"customer,omitempty"`
	IsLoading bool             `json:"is_loading"`
	Busy      bool             `json:"busy"`
	Error     string           `json:"error,omitempty"`
}

func (s Snapshot) Authenticated() bool { return s.State == StateAuthenticated }

// SessionManager owns the signed-in customer for the lifetime of the
// application. It is created by the application root and shared through
// dependency injection; views observe it with Subscribe.
type SessionManager struct {
	identity  ports.IdentityPort
	customers ports.CustomerRepositoryPort
	cache     ports.CachePort
	auth      *AuthService
	effects   ports.EffectsPort
	log       *logger.Logger
	timeout   time.Duration

	mu      sync.Mutex
	snap    Snapshot
	gen     uint64
	subs    map[int]func(Snapshot)
	nextSub int

	startOnce sync.Once
	stop      context.CancelFunc
	done      chan struct{}
}

func NewSessionManager(identity ports.IdentityPort, customers ports.CustomerRepositoryPort, cache ports.CachePort, auth *AuthService, effects ports.EffectsPort, log *logger.Logger, timeout time.Duration) *SessionManager {
	return &SessionManager{
		identity:  identity,
		customers: customers,
		cache:     cache,
		auth:      auth,
		effects:   effects,
		log:       log,
		timeout:   timeout,
		snap:      Snapshot{State: StateChecking, IsLoading: true},
		subs:      make(map[int]func(Snapshot)),
		done:      make(chan struct{}),
	}
}

func (m *SessionManager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *SessionManager) Customer() *domain.Customer {
	return m.Snapshot().Customer
}

// Subscribe registers fn for every state change and returns the function
// that removes it.
func (m *SessionManager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Init starts the auth event listener and runs the initial session check.
// The check is bounded by the configured timeout and never retried; a result
// that arrives after the timeout is dropped.
func (m *SessionManager) Init(ctx context.Context) {
	m.startListener()

	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	results := make(chan checkOutcome, 1)
	go func() { results <- m.check(cctx) }()

	select {
	case out := <-results:
		if out.clearCache {
			m.clearCachedCustomer(ctx)
		}
		m.commitIf(gen, out.snap)
	case <-cctx.Done():
		m.log.Warn("session.check_timeout", logger.Fields{"timeout": m.timeout.String()})
		m.commitIf(gen, Snapshot{State: StateError, Error: domain.ErrSessionCheckTimeout.Error()})
	}
}

type checkOutcome struct {
	snap       Snapshot
	clearCache bool
}

func (m *SessionManager) check(ctx context.Context) checkOutcome {
	session, err := m.identity.GetSession(ctx)
	if err != nil {
		m.log.Error("session.get_session", err, nil)
		return checkOutcome{snap: Snapshot{State: StateError, Error: domain.UserMessage(err)}, clearCache: true}
	}
	if session != nil {
		customer, err := m.customers.GetCustomer(ctx, session.User.ID)
		if err != nil || customer == nil {
			m.log.Error("session.fetch_customer", err, logger.Fields{"user_id": session.User.ID, "soft_failure": true})
			customer = nil
		}
		return checkOutcome{snap: Snapshot{State: StateAuthenticated, Customer: customer}}
	}

	raw, err := m.cache.Get(ctx, CachedCustomerKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			m.log.Error("session.read_cache", err, nil)
		}
		return checkOutcome{snap: Snapshot{State: StateUnauthenticated}}
	}
	var cached domain.Customer
	if err := json.Unmarshal(raw, &cached); err != nil || cached.ID == "" {
		m.log.Error("session.parse_cache", err, nil)
		return checkOutcome{snap: Snapshot{State: StateUnauthenticated}, clearCache: true}
	}
	return checkOutcome{snap: Snapshot{State: StateAuthenticated, Customer: &cached}}
}

// Login tries every credential strategy in order. Concurrent calls are not
// serialized; Busy is set so views can disable their submit control.
func (m *SessionManager) Login(ctx context.Context, phone, password string) error {
	m.setBusy(true)
	customer, kind, err := m.auth.Login(ctx, phone, password)
	if err != nil {
		m.log.Error("session.login", err, nil)
		msg := domain.UserMessage(err)
		m.update(func(s *Snapshot) { s.Busy = false; s.Error = msg })
		m.effects.Vibrate(HapticError...)
		m.effects.Toast(ports.ToastError, msg)
		return err
	}
	m.log.Info("session.login", logger.Fields{"customer_id": customer.ID, "strategy": string(kind)})
	m.signedIn(ctx, customer)
	m.effects.Vibrate(HapticSuccess...)
	m.effects.Toast(ports.ToastSuccess, "Welcome back, "+customer.FullName)
	m.effects.Navigate("/dashboard")
	return nil
}

func (m *SessionManager) Register(ctx context.Context, req RegisterRequest) (*domain.Customer, error) {
	m.setBusy(true)
	customer, err := m.auth.Register(ctx, req)
	if err != nil {
		m.log.Error("session.register", err, logger.Fields{"phone": req.PhoneNumber})
		msg := domain.UserMessage(err)
		m.update(func(s *Snapshot) { s.Busy = false; s.Error = msg })
		m.effects.Vibrate(HapticError...)
		m.effects.Toast(ports.ToastError, msg)
		return nil, err
	}
	m.signedIn(ctx, customer)
	m.effects.Vibrate(HapticSuccess...)
	m.effects.Toast(ports.ToastSuccess, "Account created")
	m.effects.Navigate("/dashboard")
	return customer, nil
}

func (m *SessionManager) Logout(ctx context.Context) {
	if err := m.identity.SignOut(ctx); err != nil {
		m.log.Error("session.sign_out", err, nil)
	}
	m.clearCachedCustomer(ctx)
	m.set(Snapshot{State: StateUnauthenticated})
	m.effects.Navigate("/login")
	m.effects.Vibrate(HapticTap...)
}

// SetCustomer replaces the signed-in customer after a profile edit.
func (m *SessionManager) SetCustomer(ctx context.Context, customer *domain.Customer) {
	m.cacheCustomer(ctx, customer)
	m.update(func(s *Snapshot) { s.Customer = customer })
}

// Close stops the auth event listener.
func (m *SessionManager) Close() {
	m.mu.Lock()
	stop := m.stop
	m.mu.Unlock()
	if stop == nil {
		return
	}
	stop()
	<-m.done
}

func (m *SessionManager) startListener() {
	m.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		m.mu.Lock()
		m.stop = cancel
		m.mu.Unlock()
		events := m.identity.AuthEvents(ctx)
		go func() {
			defer close(m.done)
			for ev := range events {
				m.handleAuthEvent(ctx, ev)
			}
		}()
	})
}

func (m *SessionManager) handleAuthEvent(ctx context.Context, ev domain.AuthEvent) {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	switch ev.Type {
	case domain.AuthSignedIn, domain.AuthTokenRefreshed, domain.AuthUserUpdated:
		if ev.Session == nil {
			return
		}
		customer, err := m.customers.GetCustomer(ctx, ev.Session.User.ID)
		if err != nil || customer == nil {
			m.log.Error("session.event_fetch_customer", err, logger.Fields{"event": string(ev.Type)})
			return
		}
		m.cacheCustomer(ctx, customer)
		m.commitIf(gen, Snapshot{State: StateAuthenticated, Customer: customer})
	case domain.AuthSignedOut:
		m.clearCachedCustomer(ctx)
		m.commitIf(gen, Snapshot{State: StateUnauthenticated})
	}
}

func (m *SessionManager) signedIn(ctx context.Context, customer *domain.Customer) {
	m.cacheCustomer(ctx, customer)
	m.set(Snapshot{State: StateAuthenticated, Customer: customer})
}

func (m *SessionManager) cacheCustomer(ctx context.Context, customer *domain.Customer) {
	if err := m.cache.Set(ctx, CachedCustomerKey, customer); err != nil {
		m.log.Error("session.write_cache", err, nil)
	}
}

func (m *SessionManager) clearCachedCustomer(ctx context.Context) {
	if err := m.cache.Delete(ctx, CachedCustomerKey); err != nil {
		m.log.Error("session.clear_cache", err, nil)
	}
}

func (m *SessionManager) setBusy(busy bool) {
	m.update(func(s *Snapshot) { s.Busy = busy; s.Error = "" })
}

func (m *SessionManager) set(next Snapshot) {
	m.mu.Lock()
	m.gen++
	m.snap = next
	snap, subs := m.snap, m.subscribers()
	m.mu.Unlock()
	notify(subs, snap)
}

// commitIf applies next only when no other transition happened since gen
// was read.
func (m *SessionManager) commitIf(gen uint64, next Snapshot) bool {
	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		return false
	}
	m.gen++
	m.snap = next
	snap, subs := m.snap, m.subscribers()
	m.mu.Unlock()
	notify(subs, snap)
	return true
}

func (m *SessionManager) update(fn func(*Snapshot)) {
	m.mu.Lock()
	fn(&m.snap)
	snap, subs := m.snap, m.subscribers()
	m.mu.Unlock()
	notify(subs, snap)
}

func (m *SessionManager) subscribers() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
