// internal/application/tips.go
package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
)

type TipService struct {
	log *logger.Logger
}

func NewTipService(log *logger.Logger) *TipService {
	return &TipService{log: log}
}

// SendTip has no payment backend behind it; a valid tip is only logged.
func (s *TipService) SendTip(ctx context.Context, customer *domain.Customer, orderID, agentID string, amount decimal.Decimal) error {
	if customer == nil {
		return domain.ErrNotAuthenticated
	}
	if !amount.IsPositive() {
		return domain.NewPublicError(nil, "tip amount must be greater than zero")
	}
	s.log.Info("tips.send_unimplemented", logger.Fields{
		"customer_id": customer.ID,
		"order_id":    orderID,
		"agent_id":    agentID,
		"amount":      amount.StringFixed(2),
	})
	return nil
}
