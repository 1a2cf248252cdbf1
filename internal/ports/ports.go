// internal/ports/ports.go
package ports

//go:generate mockgen -destination=mock_ports.go -package=ports . CustomerRepositoryPort,AgentRepositoryPort,OrderRepositoryPort,MessageRepositoryPort,IdentityPort,CachePort

import (
	"context"
	"io"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
)

// Lookups return (nil, nil) when no row matches.
type CustomerRepositoryPort interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	SetProfilePicture(ctx context.Context, id, ref string) error
}

type AgentRepositoryPort interface {
	ListAgents(ctx context.Context) ([]domain.Agent, error)
	ListAgentsByStatus(ctx context.Context, status domain.AgentStatus) ([]domain.Agent, error)
}

type OrderRepositoryPort interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
}

type MessageRepositoryPort interface {
	CreateMessage(ctx context.Context, msg *domain.Message) error
	ListMessages(ctx context.Context, orderID, participantID string) ([]domain.Message, error)
}

type FeedbackRepositoryPort interface {
	CreateFeedback(ctx context.Context, fb *domain.Feedback) error
}

// IdentityPort is the backend auth subsystem as seen from the customer app.
// GetSession returns (nil, nil) when nobody is signed in.
type IdentityPort interface {
	SignUp(ctx context.Context, email, password string) (*domain.IdentitySession, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.IdentitySession, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*domain.IdentitySession, error)
	UpdatePassword(ctx context.Context, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
	// AuthEvents delivers auth state changes until ctx is done, then closes the channel.
	AuthEvents(ctx context.Context) <-chan domain.AuthEvent
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// ChangeFeedPort streams row changes for one table. The channel is closed
// once ctx is done.
type ChangeFeedPort interface {
	Subscribe(ctx context.Context, table string, filter domain.Filter) (<-chan domain.Change, error)
}

type ObjectStorePort interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// EffectsPort receives the user-facing side effects of an operation: toasts,
// haptic patterns (milliseconds), navigation and local notifications.
type EffectsPort interface {
	Toast(kind ToastKind, message string)
	Vibrate(pattern ...int)
	Navigate(route string)
	Notify(title, body string)
}
