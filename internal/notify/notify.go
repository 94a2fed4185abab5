package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/sessions"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindCustom  Kind = "custom"
)

type Notification struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func Success(msg string) Notification {
	return Notification{Kind: KindSuccess, Message: msg}
}

func Error(msg string) Notification {
	return Notification{Kind: KindError, Message: msg}
}

func Custom(msg string, payload map[string]any) Notification {
	return Notification{Kind: KindCustom, Message: msg, Payload: payload}
}

// Notifier delivers fire-and-forget user feedback for a session.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n Notification)
}

// Hub keeps a bounded feed of notifications per session until it is drained.
type Hub struct {
	mx    sync.Mutex
	limit int
	feeds *sessions.Registry[*feed]
}

type feed struct {
	items []Notification
}

// NewHub keeps at most feedLimit notifications per session and at most limits.Max session feeds.
func NewHub(feedLimit int, limits sessions.Limits) *Hub {
	if feedLimit <= 0 {
		feedLimit = 50
	}
	return &Hub{
		limit: feedLimit,
		feeds: sessions.NewRegistry("notify", limits, func() *feed { return &feed{} }),
	}
}

// Sessions returns the number of undrained session feeds.
func (h *Hub) Sessions() int {
	return h.feeds.Len()
}

func (h *Hub) Notify(ctx context.Context, sessionID string, n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	logger.Debugf(ctx, "notify %s: %s", n.Kind, n.Message)

	h.mx.Lock()
	defer h.mx.Unlock()

	f := h.feeds.Get(sessionID)
	f.items = append(f.items, n)
	if len(f.items) > h.limit {
		f.items = f.items[len(f.items)-h.limit:]
	}
}

// Drain returns and forgets the pending notifications of a session, oldest first.
func (h *Hub) Drain(sessionID string) []Notification {
	h.mx.Lock()
	defer h.mx.Unlock()

	f, ok := h.feeds.Peek(sessionID)
	if !ok || len(f.items) == 0 {
		return []Notification{}
	}
	h.feeds.Remove(sessionID)
	return f.items
}
