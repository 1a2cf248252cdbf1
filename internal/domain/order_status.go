// internal/domain/order_status.go
package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAssigned  OrderStatus = "Assigned"
	StatusInTransit OrderStatus = "In Transit"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

var trackingSteps = []OrderStatus{StatusPending, StatusAssigned, StatusInTransit, StatusDelivered}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether next lies ahead of s in the order
// lifecycle. Status changes are made by agents and operators, so steps may be
// skipped; only moves out of a terminal status or backwards are refused.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() || s == next {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	from, _ := s.Progress()
	to, _ := next.Progress()
	return to > from
}

// Progress returns the 1-based tracking step of s and the number of steps.
// Cancelled orders report step 0.
func (s OrderStatus) Progress() (step, total int) {
	for i, st := range trackingSteps {
		if st == s {
			return i + 1, len(trackingSteps)
		}
	}
	return 0, len(trackingSteps)
}
