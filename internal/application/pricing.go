// internal/application/pricing.go
package application

import (
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
)

var (
	CBDDeliveryFee     = decimal.NewFromInt(60)
	OutsideDeliveryFee = decimal.NewFromInt(100)
	serviceChargeRate  = decimal.RequireFromString("0.10")
)

type Breakdown struct {
	BaseCharge     decimal.Decimal `json:"base_charge"`
	ServiceCharge  decimal.Decimal `json:"service_charge"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// CalculateDeliveryCharge returns the CBD fee for CBD-flagged locations and
// the outside fee for every other address, known or not.
func CalculateDeliveryCharge(address string) decimal.Decimal {
	if loc, ok := domain.FindLocation(address); ok && loc.IsCBD {
		return CBDDeliveryFee
	}
	return OutsideDeliveryFee
}

func CalculateServiceCharge(baseCharge decimal.Decimal) decimal.Decimal {
	return baseCharge.Mul(serviceChargeRate)
}

func CalculateTotalAmount(base, service, delivery decimal.Decimal) decimal.Decimal {
	return base.Add(service).Add(delivery)
}

func Quote(address string, baseCharge decimal.Decimal) Breakdown {
	service := CalculateServiceCharge(baseCharge)
	delivery := CalculateDeliveryCharge(address)
	return Breakdown{
		BaseCharge:     baseCharge,
		ServiceCharge:  service,
		DeliveryCharge: delivery,
		TotalAmount:    CalculateTotalAmount(baseCharge, service, delivery),
	}
}
