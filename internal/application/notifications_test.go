// internal/application/notifications_test.go
package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
)

func orderUpdate(id string, from, to domain.OrderStatus) domain.Change {
	rec, _ := json.Marshal(map[string]any{"id": id, "status": to, "agent_id": "a1"})
	old, _ := json.Marshal(map[string]any{"id": id, "status": from})
	return domain.Change{Table: ordersTable, Type: domain.ChangeUpdate, Record: rec, OldRecord: old}
}

func TestStatusChangeFrom(t *testing.T) {
	tests := []struct {
		name   string
		change domain.Change
		wantOK bool
	}{
		{name: "Forward move", change: orderUpdate("o1", domain.StatusPending, domain.StatusAssigned), wantOK: true},
		{name: "Stale backwards move", change: orderUpdate("o1", domain.StatusDelivered, domain.StatusInTransit)},
		{name: "Same status", change: orderUpdate("o1", domain.StatusAssigned, domain.StatusAssigned)},
		{name: "Insert", change: domain.Change{Type: domain.ChangeInsert, Record: json.RawMessage(`{"id":"o1","status":"Pending"}`)}},
		{name: "Unknown status", change: orderUpdate("o1", domain.StatusPending, "Lost")},
		{name: "Skip to delivered", change: orderUpdate("o1", domain.StatusAssigned, domain.StatusDelivered), wantOK: true},
		{name: "Skip to in transit", change: orderUpdate("o1", domain.StatusPending, domain.StatusInTransit), wantOK: true},
		{name: "Cancelled in transit", change: orderUpdate("o1", domain.StatusInTransit, domain.StatusCancelled), wantOK: true},
		{name: "Leaving cancelled", change: orderUpdate("o1", domain.StatusCancelled, domain.StatusAssigned)},
		{
			name: "Corrupt old record",
			change: domain.Change{
				Table:     "orders",
				Type:      domain.ChangeUpdate,
				Record:    json.RawMessage(`{"id":"o1","agent_id":"a1","status":"Delivered"}`),
				OldRecord: json.RawMessage(`{"status":`),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, ok := statusChangeFrom(tt.change)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, "a1", sc.AgentID)
			}
		})
	}
}

func TestNotifier_HonoursPreferences(t *testing.T) {
	prefs := NewPreferencesService(logger.Discard())
	eff := &fakeEffects{}
	n := NewNotifier(prefs, eff, logger.Discard())

	assigned := StatusChange{OrderID: "0123456789abcdef", To: domain.StatusAssigned}
	assert.True(t, n.Handle(assigned))
	assert.Equal(t, []string{"Agent assigned"}, eff.notified)

	p := prefs.Get()
	p.AgentAssigned = false
	prefs.Set(p)
	assert.False(t, n.Handle(assigned))
	assert.True(t, n.Handle(StatusChange{OrderID: "o1", To: domain.StatusInTransit}))

	p.Push = false
	prefs.Set(p)
	assert.False(t, n.Handle(StatusChange{OrderID: "o1", To: domain.StatusDelivered}))
	assert.NoError(t, prefs.Save(context.Background(), "c1"))
}

func TestOrderStatusWatcher_WatchOrder(t *testing.T) {
	feed := newFakeFeed()
	w := NewOrderStatusWatcher(feed, logger.Discard())

	got := make(chan StatusChange, 2)
	sub, err := w.WatchOrder(context.Background(), "o1", func(sc StatusChange) { got <- sc })
	require.NoError(t, err)
	defer sub.Close()

	feed.push(ordersTable, orderUpdate("o1", domain.StatusDelivered, domain.StatusPending))
	feed.push(ordersTable, orderUpdate("o1", domain.StatusAssigned, domain.StatusInTransit))
	select {
	case sc := <-got:
		assert.Equal(t, domain.StatusInTransit, sc.To)
	case <-time.After(time.Second):
		t.Fatal("status change not delivered")
	}
}

func TestOrderAlerts_Follow(t *testing.T) {
	feed := newFakeFeed()
	eff := &fakeEffects{}
	alerts := NewOrderAlerts(
		NewOrderStatusWatcher(feed, logger.Discard()),
		NewNotifier(NewPreferencesService(logger.Discard()), eff, logger.Discard()),
		logger.Discard(),
	)
	defer alerts.Close()

	alerts.Follow(context.Background(), Snapshot{State: StateAuthenticated, Customer: &domain.Customer{ID: "c1"}})
	first := alerts.sub
	require.NotNil(t, first)

	alerts.Follow(context.Background(), Snapshot{State: StateAuthenticated, Customer: &domain.Customer{ID: "c1"}})
	assert.Same(t, first, alerts.sub)

	feed.push(ordersTable, orderUpdate("o1", domain.StatusAssigned, domain.StatusDelivered))
	require.Eventually(t, func() bool {
		eff.mu.Lock()
		defer eff.mu.Unlock()
		return len(eff.notified) == 1
	}, time.Second, 10*time.Millisecond)

	alerts.Follow(context.Background(), Snapshot{State: StateUnauthenticated})
	assert.Nil(t, alerts.sub)
	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("watch not released on sign-out")
	}
}
