// internal/application/pricing_test.go
package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
)

func TestCalculateDeliveryCharge(t *testing.T) {
	for _, loc := range domain.Locations {
		want := OutsideDeliveryFee
		if loc.IsCBD {
			want = CBDDeliveryFee
		}
		assert.True(t, want.Equal(CalculateDeliveryCharge(loc.Name)), "location %q", loc.Name)
	}
	assert.True(t, OutsideDeliveryFee.Equal(CalculateDeliveryCharge("Somewhere Else")))
	assert.True(t, OutsideDeliveryFee.Equal(CalculateDeliveryCharge("")))
}

func TestCalculateServiceAndTotal(t *testing.T) {
	bases := []string{"0", "1", "15.50", "200", "999.99", "100000"}
	for _, b := range bases {
		base := decimal.RequireFromString(b)
		service := CalculateServiceCharge(base)
		assert.True(t, base.Mul(decimal.RequireFromString("0.1")).Equal(service), "service charge for %s", b)

		delivery := decimal.NewFromInt(60)
		total := CalculateTotalAmount(base, service, delivery)
		assert.True(t, base.Add(service).Add(delivery).Equal(total), "total for %s", b)
	}
}

func TestQuote_DeliveryInCBD(t *testing.T) {
	q := Quote("Eldoret CBD", decimal.NewFromInt(200))

	assert.Equal(t, "60", q.DeliveryCharge.String())
	assert.Equal(t, "20", q.ServiceCharge.String())
	assert.Equal(t, "280", q.TotalAmount.String())
}
