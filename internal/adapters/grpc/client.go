// internal/adapters/grpc/client.go
package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

// SessionKey is the cache key the signed-in identity session is kept under.
const SessionKey = "doorrush:identity-session"

// refreshSkew refreshes an access token slightly before it expires.
const refreshSkew = 30 * time.Second

// Dial opens a connection to the identity service using the JSON codec.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	}, opts...)
	return grpc.NewClient(addr, opts...)
}

// Client implements ports.IdentityPort on top of the identity gRPC service.
// The current session is kept in the cache so it survives restarts.
type Client struct {
	rpc   *IdentityClient
	cache ports.CachePort
	log   *logger.Logger
	now   func() time.Time

	mu        sync.Mutex
	listeners map[int]chan domain.AuthEvent
	nextID    int
}

func NewClient(cc grpc.ClientConnInterface, cache ports.CachePort, log *logger.Logger) *Client {
	return &Client{
		rpc:       NewIdentityClient(cc),
		cache:     cache,
		log:       log,
		now:       time.Now,
		listeners: make(map[int]chan domain.AuthEvent),
	}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.IdentitySession, error) {
	reply, err := c.rpc.SignUp(ctx, &CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapStatus(err)
	}
	return c.signedIn(ctx, reply, domain.AuthSignedIn)
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.IdentitySession, error) {
	reply, err := c.rpc.SignInWithPassword(ctx, &CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapStatus(err)
	}
	return c.signedIn(ctx, reply, domain.AuthSignedIn)
}

// SignOut revokes the stored session. The local session is dropped even when
// the service cannot be reached.
func (c *Client) SignOut(ctx context.Context) error {
	session, err := c.stored(ctx)
	if err != nil || session == nil {
		return err
	}
	_, rpcErr := c.rpc.SignOut(bearer(ctx, session), &RefreshRequest{RefreshToken: session.RefreshToken})
	if err := c.cache.Delete(ctx, SessionKey); err != nil {
		return err
	}
	c.emit(domain.AuthEvent{Type: domain.AuthSignedOut})
	if rpcErr != nil {
		return mapStatus(rpcErr)
	}
	return nil
}

// GetSession returns the stored session, refreshing it first when the access
// token is about to expire. A refresh token the service no longer accepts
// ends the session.
func (c *Client) GetSession(ctx context.Context) (*domain.IdentitySession, error) {
	session, err := c.stored(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	if !session.Expired(c.now().Add(refreshSkew)) {
		return session, nil
	}
	reply, err := c.rpc.RefreshSession(ctx, &RefreshRequest{RefreshToken: session.RefreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			c.log.Warn("identity.refresh_rejected", logger.Fields{"user_id": session.User.ID})
			if err := c.cache.Delete(ctx, SessionKey); err != nil {
				return nil, err
			}
			c.emit(domain.AuthEvent{Type: domain.AuthSignedOut})
			return nil, nil
		}
		return nil, mapStatus(err)
	}
	return c.signedIn(ctx, reply, domain.AuthTokenRefreshed)
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	session, err := c.GetSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNoSession
	}
	if _, err := c.rpc.UpdatePassword(bearer(ctx, session), &UpdatePasswordRequest{Password: newPassword}); err != nil {
		return mapStatus(err)
	}
	c.emit(domain.AuthEvent{Type: domain.AuthUserUpdated, Session: session})
	return nil
}

// DeleteUser removes the identity. Only the signed-in user can delete itself,
// which is the registration rollback case.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	session, err := c.GetSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrNoSession
	}
	if _, err := c.rpc.DeleteUser(bearer(ctx, session), &UserRequest{UserID: userID}); err != nil {
		return mapStatus(err)
	}
	if session.User.ID == userID {
		if err := c.cache.Delete(ctx, SessionKey); err != nil {
			return err
		}
	}
	return nil
}

// AuthEvents delivers auth events until ctx is done. Slow listeners miss
// events rather than block the caller.
func (c *Client) AuthEvents(ctx context.Context) <-chan domain.AuthEvent {
	ch := make(chan domain.AuthEvent, 8)
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = ch
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.listeners, id)
		close(ch)
		c.mu.Unlock()
	}()
	return ch
}

func (c *Client) emit(ev domain.AuthEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.listeners {
		select {
		case ch <- ev:
		default:
			c.log.Warn("identity.event_dropped", logger.Fields{"event": string(ev.Type)})
		}
	}
}

func (c *Client) signedIn(ctx context.Context, reply *SessionReply, evType domain.AuthEventType) (*domain.IdentitySession, error) {
	session := &domain.IdentitySession{
		AccessToken:  reply.AccessToken,
		RefreshToken: reply.RefreshToken,
		ExpiresAt:    reply.ExpiresAt,
		User:         domain.IdentityUser{ID: reply.User.ID, Email: reply.User.Email},
	}
	if err := c.cache.Set(ctx, SessionKey, session); err != nil {
		c.log.Error("identity.store_session", err, logger.Fields{"user_id": session.User.ID})
	}
	c.emit(domain.AuthEvent{Type: evType, Session: session})
	return session, nil
}

func (c *Client) stored(ctx context.Context) (*domain.IdentitySession, error) {
	raw, err := c.cache.Get(ctx, SessionKey)
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.IdentitySession
	if err := json.Unmarshal(raw, &session); err != nil || session.RefreshToken == "" {
		c.log.Warn("identity.bad_stored_session", logger.Fields{})
		return nil, c.cache.Delete(ctx, SessionKey)
	}
	return &session, nil
}

func bearer(ctx context.Context, s *domain.IdentitySession) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.AccessToken)
}

func mapStatus(err error) error {
	switch status.Code(err) {
	case codes.AlreadyExists:
		return domain.ErrPhoneRegistered
	case codes.Unauthenticated:
		return domain.ErrInvalidCredentials
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.InvalidArgument:
		return domain.NewPublicError(err, status.Convert(err).Message())
	default:
		return err
	}
}
