// internal/application/notifications.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

const ordersTable = "orders"

// StatusChange is an order moving from one status to another.
type StatusChange struct {
	OrderID string             `json:"order_id"`
	AgentID string             `json:"agent_id,omitempty"`
	From    domain.OrderStatus `json:"from"`
	To      domain.OrderStatus `json:"to"`
}

type orderRow struct {
	ID      string             `json:"id"`
	AgentID *string            `json:"agent_id"`
	Status  domain.OrderStatus `json:"status"`
}

// statusChangeFrom extracts a status change from an orders UPDATE. Moves
// backwards or out of a terminal status are dropped as stale, as are rows
// whose previous image cannot be decoded.
func statusChangeFrom(change domain.Change) (StatusChange, bool) {
	if change.Type != domain.ChangeUpdate {
		return StatusChange{}, false
	}
	var next, prev orderRow
	if err := json.Unmarshal(change.Record, &next); err != nil || next.ID == "" {
		return StatusChange{}, false
	}
	if len(change.OldRecord) > 0 && string(change.OldRecord) != "null" {
		if err := json.Unmarshal(change.OldRecord, &prev); err != nil {
			return StatusChange{}, false
		}
	}
	if prev.Status == next.Status || !next.Status.IsValid() {
		return StatusChange{}, false
	}
	if prev.Status != "" && !prev.Status.CanTransitionTo(next.Status) {
		return StatusChange{}, false
	}
	sc := StatusChange{OrderID: next.ID, From: prev.Status, To: next.Status}
	if next.AgentID != nil {
		sc.AgentID = *next.AgentID
	}
	return sc, true
}

type OrderStatusWatcher struct {
	feed ports.ChangeFeedPort
	log  *logger.Logger
}

func NewOrderStatusWatcher(feed ports.ChangeFeedPort, log *logger.Logger) *OrderStatusWatcher {
	return &OrderStatusWatcher{feed: feed, log: log}
}

// WatchOrder calls fn for every status change of one order.
func (w *OrderStatusWatcher) WatchOrder(ctx context.Context, orderID string, fn func(StatusChange)) (*Subscription, error) {
	return w.watch(ctx, domain.Filter{Column: "id", Value: orderID}, fn)
}

// WatchCustomerOrders calls fn for status changes of any of the customer's orders.
func (w *OrderStatusWatcher) WatchCustomerOrders(ctx context.Context, customerID string, fn func(StatusChange)) (*Subscription, error) {
	return w.watch(ctx, domain.Filter{Column: "customer_id", Value: customerID}, fn)
}

func (w *OrderStatusWatcher) watch(ctx context.Context, filter domain.Filter, fn func(StatusChange)) (*Subscription, error) {
	return subscribe(ctx, w.feed, ordersTable, filter, func(change domain.Change) {
		sc, ok := statusChangeFrom(change)
		if !ok {
			w.log.Debug("orders.change_ignored", logger.Fields{"type": string(change.Type)})
			return
		}
		fn(sc)
	})
}

// PreferencesService holds the notification toggles for this app instance.
// They are not persisted.
type PreferencesService struct {
	log *logger.Logger

	mu    sync.RWMutex
	prefs domain.NotificationPreferences
}

func NewPreferencesService(log *logger.Logger) *PreferencesService {
	return &PreferencesService{log: log, prefs: domain.DefaultNotificationPreferences()}
}

func (p *PreferencesService) Get() domain.NotificationPreferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefs
}

func (p *PreferencesService) Set(prefs domain.NotificationPreferences) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs = prefs
}

// Save would push the preferences to the backend. No such endpoint exists
// yet, so the call is logged and reported as successful.
func (p *PreferencesService) Save(ctx context.Context, customerID string) error {
	p.log.Info("preferences.save_unimplemented", logger.Fields{"customer_id": customerID, "prefs": p.Get()})
	return nil
}

// Notifier turns order status changes into local notifications.
type Notifier struct {
	prefs   *PreferencesService
	effects ports.EffectsPort
	log     *logger.Logger
}

func NewNotifier(prefs *PreferencesService, effects ports.EffectsPort, log *logger.Logger) *Notifier {
	return &Notifier{prefs: prefs, effects: effects, log: log}
}

// Handle reports whether a notification was raised for sc.
func (n *Notifier) Handle(sc StatusChange) bool {
	prefs := n.prefs.Get()
	if !prefs.Push {
		return false
	}
	short := sc.OrderID
	if len(short) > 8 {
		short = short[:8]
	}
	var title, body string
	switch sc.To {
	case domain.StatusAssigned:
		if !prefs.AgentAssigned {
			return false
		}
		title, body = "Agent assigned", fmt.Sprintf("An agent has been assigned to order %s", short)
	case domain.StatusDelivered:
		if !prefs.Delivered {
			return false
		}
		title, body = "Order delivered", fmt.Sprintf("Order %s has been delivered", short)
	default:
		if !prefs.OrderUpdates {
			return false
		}
		title, body = "Order update", fmt.Sprintf("Order %s is now %s", short, sc.To)
	}
	n.effects.Notify(title, body)
	n.log.Debug("notifications.raise", logger.Fields{"order_id": sc.OrderID, "status": string(sc.To)})
	return true
}

// OrderAlerts keeps one status watch on the signed-in customer's orders and
// feeds it to the notifier. Follow is called with every session snapshot.
type OrderAlerts struct {
	watcher  *OrderStatusWatcher
	notifier *Notifier
	log      *logger.Logger

	mu         sync.Mutex
	customerID string
	sub        *Subscription
}

func NewOrderAlerts(watcher *OrderStatusWatcher, notifier *Notifier, log *logger.Logger) *OrderAlerts {
	return &OrderAlerts{watcher: watcher, notifier: notifier, log: log}
}

func (a *OrderAlerts) Follow(ctx context.Context, snap Snapshot) {
	var want string
	if snap.Authenticated() && snap.Customer != nil {
		want = snap.Customer.ID
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if want == a.customerID {
		return
	}
	if a.sub != nil {
		a.sub.Close()
		a.sub = nil
	}
	a.customerID = ""
	if want == "" {
		return
	}
	sub, err := a.watcher.WatchCustomerOrders(ctx, want, func(sc StatusChange) { a.notifier.Handle(sc) })
	if err != nil {
		a.log.Error("alerts.watch", err, logger.Fields{"customer_id": want})
		return
	}
	a.customerID = want
	a.sub = sub
}

func (a *OrderAlerts) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.sub != nil {
		a.sub.Close()
		a.sub = nil
	}
	a.customerID = ""
}
