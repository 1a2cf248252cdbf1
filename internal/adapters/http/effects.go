// internal/adapters/http/effects.go
package http

import (
	"sync"
	"time"

	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

const notificationLogSize = 50

type Toast struct {
	Kind    ports.ToastKind `json:"kind"`
	Message string          `json:"message"`
}

type Notification struct {
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"at"`
}

// Effects is what the client should do besides rendering the response.
type Effects struct {
	Toasts        []Toast        `json:"toasts,omitempty"`
	Haptics       [][]int        `json:"haptics,omitempty"`
	Navigate      string         `json:"navigate,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// Outbox queues effects raised by the application until the next response
// drains them. It also keeps the latest notifications for the
// notifications page.
type Outbox struct {
	mu      sync.Mutex
	pending Effects
	log     []Notification
	now     func() time.Time
}

func NewOutbox() *Outbox {
	return &Outbox{now: time.Now}
}

func (o *Outbox) Toast(kind ports.ToastKind, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending.Toasts = append(o.pending.Toasts, Toast{Kind: kind, Message: message})
}

func (o *Outbox) Vibrate(pattern ...int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending.Haptics = append(o.pending.Haptics, append([]int(nil), pattern...))
}

// Navigate keeps only the last requested route.
func (o *Outbox) Navigate(route string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending.Navigate = route
}

func (o *Outbox) Notify(title, body string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := Notification{Title: title, Body: body, At: o.now().UTC()}
	o.pending.Notifications = append(o.pending.Notifications, n)
	o.log = append(o.log, n)
	if len(o.log) > notificationLogSize {
		o.log = o.log[len(o.log)-notificationLogSize:]
	}
}

func (o *Outbox) Drain() Effects {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.pending
	o.pending = Effects{}
	return out
}

// Notifications returns the kept notifications, newest first.
func (o *Outbox) Notifications() []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Notification, len(o.log))
	for i, n := range o.log {
		out[len(o.log)-1-i] = n
	}
	return out
}
