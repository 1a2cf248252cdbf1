// internal/application/messaging.go
package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

// Messenger sends and lists order messages on behalf of the signed-in
// customer. Failures are logged and reported as a nil message or an empty
// list.
type Messenger struct {
	messages ports.MessageRepositoryPort
	session  CustomerSource
	log      *logger.Logger
	now      func() time.Time
}

func NewMessenger(messages ports.MessageRepositoryPort, session CustomerSource, log *logger.Logger) *Messenger {
	return &Messenger{messages: messages, session: session, log: log, now: time.Now}
}

func (m *Messenger) SendMessageToAgent(ctx context.Context, orderID, receiverID, text string) *domain.Message {
	customer := m.session.Customer()
	if customer == nil {
		m.log.Warn("messages.send", logger.Fields{"order_id": orderID, "reason": "not signed in"})
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	msg := &domain.Message{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		SenderID:   customer.ID,
		ReceiverID: receiverID,
		Text:       text,
		CreatedAt:  m.now().UTC(),
	}
	if err := m.messages.CreateMessage(ctx, msg); err != nil {
		m.log.Error("messages.send", err, logger.Fields{"order_id": orderID})
		return nil
	}
	return msg
}

// GetOrderMessages returns the order's messages that involve the signed-in
// customer, oldest first.
func (m *Messenger) GetOrderMessages(ctx context.Context, orderID string) []domain.Message {
	customer := m.session.Customer()
	if customer == nil {
		return []domain.Message{}
	}
	msgs, err := m.messages.ListMessages(ctx, orderID, customer.ID)
	if err != nil {
		m.log.Error("messages.list", err, logger.Fields{"order_id": orderID})
		return []domain.Message{}
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs
}
