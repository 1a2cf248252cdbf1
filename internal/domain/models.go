// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	LegacyPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

type AgentStatus string

const (
	AgentOnline  AgentStatus = "online"
	AgentOffline AgentStatus = "offline"
)

type Agent struct {
	ID             string      `json:"id"`
	FullName       string      `json:"full_name"`
	PhoneNumber    string      `json:"phone_number"`
	Status         AgentStatus `json:"status"`
	Location       string      `json:"location"`
	ProfilePicture string      `json:"profile_picture,omitempty"`
	Rating         float64     `json:"rating"`
	AgentCode      string      `json:"agent_code,omitempty"`
}

func (a Agent) IsOnline() bool { return a.Status == AgentOnline }

type ServiceType string

const (
	ServiceShopping ServiceType = "Shopping"
	ServiceDelivery ServiceType = "Delivery"
	ServiceErrand   ServiceType = "Errand"
)

var ServiceTypes = []ServiceType{ServiceShopping, ServiceDelivery, ServiceErrand}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceShopping, ServiceDelivery, ServiceErrand:
		return true
	default:
		return false
	}
}

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	AgentID         string          `json:"agent_id,omitempty"`
	ServiceType     ServiceType     `json:"service_type"`
	DeliveryAddress string          `json:"delivery_address"`
	Instructions    string          `json:"instructions,omitempty"`
	Description     string          `json:"description"`
	Status          OrderStatus     `json:"status"`
	BaseCharge      decimal.Decimal `json:"base_charge"`
	ServiceCharge   decimal.Decimal `json:"service_charge"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Message struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Text       string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationPreferences struct {
	OrderUpdates  bool `json:"order_updates"`
	Promotions    bool `json:"promotions"`
	AgentAssigned bool `json:"agent_assigned"`
	Delivered     bool `json:"delivered"`
	Push          bool `json:"push"`
	Email         bool `json:"email"`
	SMS           bool `json:"sms"`
}

// DefaultNotificationPreferences is what a customer sees before touching any toggle.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		OrderUpdates:  true,
		AgentAssigned: true,
		Delivered:     true,
		Push:          true,
	}
}

type Feedback struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Category   string    `json:"category"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
