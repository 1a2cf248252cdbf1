// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

// OrderDraft is what the order form has collected when it is submitted.
type OrderDraft struct {
	ServiceType  domain.ServiceType
	Address      string
	Instructions string
	AutoAssign   bool
	AgentID      string
	BaseCharge   decimal.Decimal
}

// Confirmation carries the figures computed at submit time so the
// confirmation view never has to re-read the freshly written row.
type Confirmation struct {
	OrderID     string             `json:"order_id"`
	ServiceType domain.ServiceType `json:"service_type"`
	Address     string             `json:"delivery_address"`
	AgentID     string             `json:"agent_id,omitempty"`
	Breakdown   Breakdown          `json:"breakdown"`
	CreatedAt   time.Time          `json:"created_at"`
}

type OrderService struct {
	repo      ports.OrderRepositoryPort
	directory *AgentDirectory
	log       *logger.Logger
	now       func() time.Time
}

func NewOrderService(repo ports.OrderRepositoryPort, directory *AgentDirectory, log *logger.Logger) *OrderService {
	return &OrderService{repo: repo, directory: directory, log: log, now: time.Now}
}

// PlaceOrder resolves the agent and inserts a single order row. When auto
// assignment finds nobody online nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, customer *domain.Customer, draft OrderDraft) (*Confirmation, error) {
	if customer == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !draft.ServiceType.IsValid() || strings.TrimSpace(draft.Address) == "" {
		return nil, domain.ErrMissingDetails
	}

	agentID := draft.AgentID
	if draft.AutoAssign {
		agent, err := s.directory.GetRandomOnlineAgent(ctx)
		if err != nil {
			return nil, fmt.Errorf("pick agent: %w", err)
		}
		if agent == nil {
			return nil, domain.ErrNoAgentsAvailable
		}
		agentID = agent.ID
	}

	quote := Quote(draft.Address, draft.BaseCharge)
	now := s.now().UTC()
	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		CustomerName:    customer.FullName,
		CustomerPhone:   customer.PhoneNumber,
		AgentID:         agentID,
		ServiceType:     draft.ServiceType,
		DeliveryAddress: draft.Address,
		Instructions:    strings.TrimSpace(draft.Instructions),
		Description:     describe(draft),
		Status:          domain.StatusPending,
		BaseCharge:      quote.BaseCharge,
		ServiceCharge:   quote.ServiceCharge,
		DeliveryCharge:  quote.DeliveryCharge,
		TotalAmount:     quote.TotalAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		s.log.Error("order.create", err, logger.Fields{"customer_id": customer.ID})
		return nil, domain.NewPublicError(err, "failed to place order")
	}
	s.log.Info("order.create", logger.Fields{"order_id": order.ID, "agent_id": agentID, "auto_assign": draft.AutoAssign})

	return &Confirmation{
		OrderID:     order.ID,
		ServiceType: order.ServiceType,
		Address:     order.DeliveryAddress,
		AgentID:     agentID,
		Breakdown:   quote,
		CreatedAt:   now,
	}, nil
}

func describe(draft OrderDraft) string {
	if s := strings.TrimSpace(draft.Instructions); s != "" {
		return s
	}
	return fmt.Sprintf("%s order to %s", draft.ServiceType, draft.Address)
}

// VerifyConfirmation reports whether the order behind a confirmation can be
// read back. Backend errors count as not verified.
func (s *OrderService) VerifyConfirmation(ctx context.Context, customerID, orderID string) bool {
	order, err := s.repo.GetOrder(ctx, orderID, customerID)
	if err != nil {
		s.log.Warn("order.verify", logger.Fields{"order_id": orderID, "error": err.Error()})
		return false
	}
	return order != nil
}

// History lists the customer's orders, newest first.
func (s *OrderService) History(ctx context.Context, customerID string) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

type OrderDetail struct {
	Order     *domain.Order `json:"order"`
	Step      int           `json:"step"`
	Steps     int           `json:"steps"`
	QRPayload string        `json:"qr_payload"`
}

func (s *OrderService) Detail(ctx context.Context, customerID, orderID string) (*OrderDetail, error) {
	order, err := s.repo.GetOrder(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	payload, err := QRPayload(order)
	if err != nil {
		return nil, err
	}
	step, steps := order.Status.Progress()
	return &OrderDetail{Order: order, Step: step, Steps: steps, QRPayload: payload}, nil
}

type qrPayload struct {
	OrderID         string             `json:"orderId"`
	ServiceType     domain.ServiceType `json:"serviceType"`
	DeliveryAddress string             `json:"deliveryAddress"`
	TotalAmount     float64            `json:"totalAmount"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// QRPayload is the JSON text encoded into the order's QR code.
func QRPayload(order *domain.Order) (string, error) {
	total, _ := order.TotalAmount.Float64()
	b, err := json.Marshal(qrPayload{
		OrderID:         order.ID,
		ServiceType:     order.ServiceType,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     total,
		CreatedAt:       order.CreatedAt,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
