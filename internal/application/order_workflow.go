// internal/application/order_workflow.go
package application

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

type WorkflowStep int

const (
	StepDetails WorkflowStep = iota + 1
	StepAgent
	StepReview
)

// CustomerSource yields the signed-in customer, or nil.
type CustomerSource interface {
	Customer() *domain.Customer
}

type WorkflowView struct {
	Step         WorkflowStep       `json:"step"`
	ServiceType  domain.ServiceType `json:"service_type"`
	Address      string             `json:"delivery_address"`
	Instructions string             `json:"instructions"`
	AutoAssign   bool               `json:"auto_assign"`
	AgentID      string             `json:"agent_id,omitempty"`
	Submitting   bool               `json:"submitting"`
	Breakdown    *Breakdown         `json:"breakdown,omitempty"`
}

// OrderWorkflow is the three step order form: details, agent, review.
type OrderWorkflow struct {
	orders   *OrderService
	session  CustomerSource
	effects  ports.EffectsPort
	log      *logger.Logger
	baseCost decimal.Decimal

	mu         sync.Mutex
	step       WorkflowStep
	draft      OrderDraft
	submitting bool
	last       *Confirmation
}

func NewOrderWorkflow(orders *OrderService, session CustomerSource, effects ports.EffectsPort, baseCharge decimal.Decimal, log *logger.Logger) *OrderWorkflow {
	w := &OrderWorkflow{orders: orders, session: session, effects: effects, baseCost: baseCharge, log: log}
	w.resetLocked()
	return w
}

func (w *OrderWorkflow) resetLocked() {
	w.step = StepDetails
	w.draft = OrderDraft{AutoAssign: true, BaseCharge: w.baseCost}
	w.submitting = false
}

func (w *OrderWorkflow) SetDetails(service domain.ServiceType, address, instructions string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.ServiceType = service
	w.draft.Address = address
	w.draft.Instructions = instructions
}

// Next advances one step. Leaving the details step needs a valid service
// type and an address.
func (w *OrderWorkflow) Next() error {
	w.mu.Lock()
	if w.step == StepDetails && (!w.draft.ServiceType.IsValid() || w.draft.Address == "") {
		w.mu.Unlock()
		w.effects.Vibrate(HapticError...)
		w.effects.Toast(ports.ToastError, domain.ErrMissingDetails.Error())
		return domain.ErrMissingDetails
	}
	if w.step == StepAgent && !w.draft.AutoAssign && w.draft.AgentID == "" {
		w.mu.Unlock()
		w.effects.Vibrate(HapticError...)
		w.effects.Toast(ports.ToastError, "please select an agent or enable auto-assign")
		return domain.ErrInvalidStep
	}
	if w.step < StepReview {
		w.step++
	}
	w.mu.Unlock()
	w.effects.Vibrate(HapticTap...)
	return nil
}

func (w *OrderWorkflow) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepDetails {
		w.step--
	}
}

// SelectAgent picks an agent by hand, which turns auto assignment off.
func (w *OrderWorkflow) SelectAgent(agentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AgentID = agentID
	w.draft.AutoAssign = false
}

func (w *OrderWorkflow) SetAutoAssign(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AutoAssign = on
	if on {
		w.draft.AgentID = ""
	}
}

func (w *OrderWorkflow) Review() Breakdown {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Quote(w.draft.Address, w.draft.BaseCharge)
}

func (w *OrderWorkflow) View() WorkflowView {
	w.mu.Lock()
	defer w.mu.Unlock()
	v := WorkflowView{
		Step:         w.step,
		ServiceType:  w.draft.ServiceType,
		Address:      w.draft.Address,
		Instructions: w.draft.Instructions,
		AutoAssign:   w.draft.AutoAssign,
		AgentID:      w.draft.AgentID,
		Submitting:   w.submitting,
	}
	if w.step == StepReview {
		b := Quote(w.draft.Address, w.draft.BaseCharge)
		v.Breakdown = &b
	}
	return v
}

// Submit places the order. Without a signed-in customer it navigates to the
// login page instead.
func (w *OrderWorkflow) Submit(ctx context.Context) (*Confirmation, error) {
	customer := w.session.Customer()
	if customer == nil {
		w.effects.Navigate("/login")
		return nil, domain.ErrNotAuthenticated
	}

	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, domain.ErrInvalidStep
	}
	w.submitting = true
	draft := w.draft
	w.mu.Unlock()

	conf, err := w.orders.PlaceOrder(ctx, customer, draft)

	w.mu.Lock()
	w.submitting = false
	if err == nil {
		w.last = conf
		w.resetLocked()
	}
	w.mu.Unlock()

	if err != nil {
		if !errors.Is(err, domain.ErrNoAgentsAvailable) {
			w.log.Error("workflow.submit", err, logger.Fields{"customer_id": customer.ID})
		}
		w.effects.Vibrate(HapticError...)
		w.effects.Toast(ports.ToastError, domain.UserMessage(err))
		return nil, err
	}
	w.effects.Vibrate(HapticSuccess...)
	w.effects.Toast(ports.ToastSuccess, "Order placed")
	w.effects.Navigate("/order-confirmation")
	return conf, nil
}

// Reset abandons the current draft.
func (w *OrderWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

// LastConfirmation is the confirmation of the most recent successful submit.
func (w *OrderWorkflow) LastConfirmation() *Confirmation {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}
