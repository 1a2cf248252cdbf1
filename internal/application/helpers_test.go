// internal/application/helpers_test.go
package application

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type toast struct {
	kind ports.ToastKind
	msg  string
}

type fakeEffects struct {
	mu       sync.Mutex
	toasts   []toast
	patterns [][]int
	routes   []string
	notified []string
}

func (e *fakeEffects) Toast(kind ports.ToastKind, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toasts = append(e.toasts, toast{kind, message})
}

func (e *fakeEffects) Vibrate(pattern ...int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.patterns = append(e.patterns, pattern)
}

func (e *fakeEffects) Navigate(route string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.routes = append(e.routes, route)
}

func (e *fakeEffects) Notify(title, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notified = append(e.notified, title)
}

func (e *fakeEffects) lastRoute() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.routes) == 0 {
		return ""
	}
	return e.routes[len(e.routes)-1]
}

func (e *fakeEffects) lastToast() toast {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.toasts) == 0 {
		return toast{}
	}
	return e.toasts[len(e.toasts)-1]
}

// fakeIdentity is hand written because the session tests need to hold calls
// open and push auth events.
type fakeIdentity struct {
	signUp     func(ctx context.Context, email, password string) (*domain.IdentitySession, error)
	signIn     func(ctx context.Context, email, password string) (*domain.IdentitySession, error)
	getSession func(ctx context.Context) (*domain.IdentitySession, error)
	events     chan domain.AuthEvent

	mu      sync.Mutex
	deleted []string
	signOut int
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{events: make(chan domain.AuthEvent, 4)}
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (*domain.IdentitySession, error) {
	return f.signUp(ctx, email, password)
}

func (f *fakeIdentity) SignInWithPassword(ctx context.Context, email, password string) (*domain.IdentitySession, error) {
	return f.signIn(ctx, email, password)
}

func (f *fakeIdentity) SignOut(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOut++
	return nil
}

func (f *fakeIdentity) GetSession(ctx context.Context) (*domain.IdentitySession, error) {
	if f.getSession == nil {
		return nil, nil
	}
	return f.getSession(ctx)
}

func (f *fakeIdentity) UpdatePassword(ctx context.Context, newPassword string) error { return nil }

func (f *fakeIdentity) DeleteUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeIdentity) AuthEvents(ctx context.Context) <-chan domain.AuthEvent {
	out := make(chan domain.AuthEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-f.events:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

type fakeCustomers struct {
	mu        sync.Mutex
	byID      map[string]*domain.Customer
	getErr    error
	createErr error
}

func newFakeCustomers(cs ...*domain.Customer) *fakeCustomers {
	f := &fakeCustomers{byID: map[string]*domain.Customer{}}
	for _, c := range cs {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCustomers) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomers) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}

func (f *fakeCustomers) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.PhoneNumber == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomers) SetProfilePicture(ctx context.Context, id, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byID[id]; ok {
		c.ProfilePicture = ref
	}
	return nil
}

type fakeFeed struct {
	mu   sync.Mutex
	subs map[string]chan domain.Change
	err  error
}

func newFakeFeed() *fakeFeed { return &fakeFeed{subs: map[string]chan domain.Change{}} }

func (f *fakeFeed) Subscribe(ctx context.Context, table string, filter domain.Filter) (<-chan domain.Change, error) {
	if f.err != nil {
		return nil, f.err
	}
	in := make(chan domain.Change, 8)
	out := make(chan domain.Change)
	f.mu.Lock()
	f.subs[table] = in
	f.mu.Unlock()
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-in:
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (f *fakeFeed) push(table string, c domain.Change) {
	f.mu.Lock()
	ch := f.subs[table]
	f.mu.Unlock()
	ch <- c
}

type fakeStore struct {
	names []string
	err   error
}

func (s *fakeStore) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.names = append(s.names, name)
	return "/files/" + name, nil
}

type customerSourceFunc func() *domain.Customer

func (f customerSourceFunc) Customer() *domain.Customer { return f() }
