// internal/adapters/repository/postgres_test.go
package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
)

// Runs against a real Postgres when TEST_DATABASE_DSN is set.
func setupTestDB(t *testing.T) *PostgresRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to connect to DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("InitSchema() error: %v", err)
	}
	return NewPostgresRepository(db)
}

func TestPostgresRepository_CustomerAndOrders(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	phone := "07" + uuid.NewString()[:8]
	customer := &domain.Customer{ID: uuid.NewString(), FullName: "Jane", PhoneNumber: phone, Address: "Langas"}
	if err := repo.CreateCustomer(ctx, customer); err != nil {
		t.Fatalf("CreateCustomer() error: %v", err)
	}
	found, err := repo.FindCustomerByPhone(ctx, phone)
	if err != nil || found == nil || found.ID != customer.ID {
		t.Fatalf("FindCustomerByPhone() = %v, %v", found, err)
	}
	missing, err := repo.GetCustomer(ctx, uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("GetCustomer(unknown) = %v, %v, want nil, nil", missing, err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	for i, addr := range []string{"Eldoret CBD", "Kapsoya"} {
		o := &domain.Order{
			ID:              uuid.NewString(),
			CustomerID:      customer.ID,
			CustomerName:    customer.FullName,
			CustomerPhone:   phone,
			ServiceType:     domain.ServiceDelivery,
			DeliveryAddress: addr,
			Description:     "parcel",
			Status:          domain.StatusPending,
			BaseCharge:      decimal.NewFromInt(200),
			ServiceCharge:   decimal.NewFromInt(20),
			DeliveryCharge:  decimal.NewFromInt(60),
			TotalAmount:     decimal.NewFromInt(280),
			CreatedAt:       now.Add(time.Duration(i) * time.Minute),
			UpdatedAt:       now,
		}
		if err := repo.CreateOrder(ctx, o); err != nil {
			t.Fatalf("CreateOrder() error: %v", err)
		}
	}
	orders, err := repo.ListOrders(ctx, customer.ID)
	if err != nil || len(orders) != 2 {
		t.Fatalf("ListOrders() = %v, %v", orders, err)
	}
	if orders[0].DeliveryAddress != "Kapsoya" || !orders[0].TotalAmount.Equal(decimal.NewFromInt(280)) {
		t.Errorf("ListOrders()[0] = %+v", orders[0])
	}
	got, err := repo.GetOrder(ctx, orders[1].ID, "someone-else")
	if err != nil || got != nil {
		t.Errorf("GetOrder(other customer) = %v, %v, want nil, nil", got, err)
	}
}
