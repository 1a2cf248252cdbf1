// internal/adapters/realtime/feed.go
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
)

const subscriberBuffer = 32

type subscriber struct {
	table  string
	filter domain.Filter
	ch     chan domain.Change
}

// Feed fans row changes out to subscribers. Changes come from Postgres
// LISTEN/NOTIFY when Listen is running, or from Publish.
type Feed struct {
	log *logger.Logger

	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
}

func NewFeed(log *logger.Logger) *Feed {
	return &Feed{log: log, subs: make(map[int]*subscriber)}
}

// Subscribe delivers changes for table that match filter until ctx is done.
// An empty filter column matches every row.
func (f *Feed) Subscribe(ctx context.Context, table string, filter domain.Filter) (<-chan domain.Change, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &subscriber{table: table, filter: filter, ch: make(chan domain.Change, subscriberBuffer)}
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = s
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		close(s.ch)
		f.mu.Unlock()
	}()
	return s.ch, nil
}

// Publish hands a change to every matching subscriber. A subscriber whose
// buffer is full misses the change.
func (f *Feed) Publish(change domain.Change) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.subs {
		if s.table != change.Table || !matches(s.filter, change) {
			continue
		}
		select {
		case s.ch <- change:
		default:
			f.log.Warn("realtime.dropped", logger.Fields{"table": change.Table})
		}
	}
}

func matches(filter domain.Filter, change domain.Change) bool {
	if filter.Column == "" {
		return true
	}
	raw := change.Record
	if change.Type == domain.ChangeDelete || len(raw) == 0 || string(raw) == "null" {
		raw = change.OldRecord
	}
	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return false
	}
	v, ok := row[filter.Column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == filter.Value
}

type notification struct {
	Table     string          `json:"table"`
	Type      string          `json:"type"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}

// Listen holds one pool connection on LISTEN channel and publishes every
// notification until ctx is done. A lost connection is reported, not retried.
func (f *Feed) Listen(ctx context.Context, pool *pgxpool.Pool, channel string) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return fmt.Errorf("listen %s: %w", channel, err)
	}
	f.log.Info("realtime.listening", logger.Fields{"channel": channel})

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		change, err := decode(n.Payload)
		if err != nil {
			f.log.Error("realtime.decode", err, logger.Fields{"channel": channel})
			continue
		}
		f.Publish(change)
	}
}

func decode(payload string) (domain.Change, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return domain.Change{}, err
	}
	if n.Table == "" {
		return domain.Change{}, fmt.Errorf("notification without table")
	}
	return domain.Change{
		Table:     n.Table,
		Type:      domain.ChangeType(n.Type),
		Record:    n.Record,
		OldRecord: n.OldRecord,
	}, nil
}

// Connect opens the pool the listener runs on.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(pctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
