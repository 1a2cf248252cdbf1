// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
)

// PostgresRepository implements every repository port on one *sql.DB.
// Single-row lookups return (nil, nil) when nothing matches.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const customerColumns = `id, full_name, phone_number, address, profile_picture, password, created_at`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	var picture, password sql.NullString
	err := row.Scan(&c.ID, &c.FullName, &c.PhoneNumber, &c.Address, &picture, &password, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ProfilePicture = picture.String
	c.LegacyPassword = password.String
	return c, nil
}

func (r *PostgresRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO customers (id, full_name, phone_number, address, profile_picture)
		 VALUES ($1, $2, $3, $4, NULLIF($5, '')) RETURNING created_at`,
		c.ID, c.FullName, c.PhoneNumber, c.Address, c.ProfilePicture,
	).Scan(&c.CreatedAt)
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
}

func (r *PostgresRepository) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE phone_number = $1", phone))
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE customers SET full_name = $1, address = $2 WHERE id = $3",
		c.FullName, c.Address, c.ID)
	return affectedOne(res, err)
}

func (r *PostgresRepository) SetProfilePicture(ctx context.Context, id, ref string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE customers SET profile_picture = $1 WHERE id = $2", ref, id)
	return affectedOne(res, err)
}

func (r *PostgresRepository) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	return r.queryAgents(ctx, "SELECT "+agentColumns+" FROM agents ORDER BY full_name")
}

func (r *PostgresRepository) ListAgentsByStatus(ctx context.Context, status domain.AgentStatus) ([]domain.Agent, error) {
	return r.queryAgents(ctx, "SELECT "+agentColumns+" FROM agents WHERE status = $1 ORDER BY full_name", status)
}

const agentColumns = `id, full_name, phone_number, status, location, profile_picture, rating, agent_code`

func (r *PostgresRepository) queryAgents(ctx context.Context, query string, args ...any) ([]domain.Agent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []domain.Agent{}
	for rows.Next() {
		var a domain.Agent
		var picture, code sql.NullString
		if err := rows.Scan(&a.ID, &a.FullName, &a.PhoneNumber, &a.Status, &a.Location, &picture, &a.Rating, &code); err != nil {
			return nil, err
		}
		a.ProfilePicture = picture.String
		a.AgentCode = code.String
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

const orderColumns = `id, customer_id, customer_name, customer_phone, agent_id, service_type, delivery_address,
	instructions, description, status, base_charge, service_charge, delivery_charge, total_amount, created_at, updated_at`

func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, customer_id, customer_name, customer_phone, agent_id, service_type, delivery_address,
			instructions, description, status, base_charge, service_charge, delivery_charge, total_amount, created_at, updated_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, o.AgentID, o.ServiceType, o.DeliveryAddress,
		o.Instructions, o.Description, o.Status, o.BaseCharge, o.ServiceCharge, o.DeliveryCharge, o.TotalAmount,
		o.CreatedAt, o.UpdatedAt,
	)
	return err
}

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	o := &domain.Order{}
	var agentID, instructions sql.NullString
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &agentID, &o.ServiceType, &o.DeliveryAddress,
		&instructions, &o.Description, &o.Status, &o.BaseCharge, &o.ServiceCharge, &o.DeliveryCharge, &o.TotalAmount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.AgentID = agentID.String
	o.Instructions = instructions.String
	return o, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND customer_id = $2", id, customerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (r *PostgresRepository) ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE customer_id = $1 ORDER BY created_at DESC", customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (id, order_id, sender_id, receiver_id, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		m.ID, m.OrderID, m.SenderID, m.ReceiverID, m.Text, m.CreatedAt)
	return err
}

func (r *PostgresRepository) ListMessages(ctx context.Context, orderID, participantID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, sender_id, receiver_id, message, created_at FROM messages
		WHERE order_id = $1 AND (sender_id = $2 OR receiver_id = $2)
		ORDER BY created_at ASC`, orderID, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.OrderID, &m.SenderID, &m.ReceiverID, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *PostgresRepository) CreateFeedback(ctx context.Context, f *domain.Feedback) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO feedback (id, customer_id, category, rating, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		f.ID, f.CustomerID, f.Category, f.Rating, f.Message, f.CreatedAt)
	return err
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
