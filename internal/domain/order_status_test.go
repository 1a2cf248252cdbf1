// internal/domain/order_status_test.go
package domain

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusAssigned, true},
		{StatusPending, StatusInTransit, true},
		{StatusAssigned, StatusDelivered, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusPending, StatusCancelled, true},
		{StatusInTransit, StatusAssigned, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusCancelled, StatusAssigned, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusAssigned, StatusAssigned, false},
		{StatusPending, OrderStatus("Lost"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
