package sessions

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/ougirez/solarscope/internal/pkg/metrics"
)

const (
	DefaultMax     = 10000
	DefaultIdleTTL = 30 * time.Minute
)

// Limits bound a Registry. Zero values select the defaults.
type Limits struct {
	Max     int
	IdleTTL time.Duration
}

// Registry holds per-session state. Entries idle for longer than IdleTTL are dropped, and once Max
// entries are held the least recently used one is dropped to make room.
type Registry[T any] struct {
	mx       sync.Mutex
	cache    *expirable.LRU[string, T]
	newFunc  func() T
	removing atomic.Bool
}

// NewRegistry returns a Registry named name in metrics. newFunc seeds unknown sessions.
func NewRegistry[T any](name string, limits Limits, newFunc func() T) *Registry[T] {
	if limits.Max <= 0 {
		limits.Max = DefaultMax
	}
	if limits.IdleTTL <= 0 {
		limits.IdleTTL = DefaultIdleTTL
	}

	r := &Registry[T]{newFunc: newFunc}

	evicted := metrics.SessionsEvicted.WithLabelValues(name)
	r.cache = expirable.NewLRU[string, T](limits.Max, func(string, T) {
		// Explicit removals are not evictions.
		if !r.removing.Load() {
			evicted.Inc()
		}
	}, limits.IdleTTL)

	return r
}

// Get returns the state of sid, seeding it on first use, and restarts its idle timer.
func (r *Registry[T]) Get(sid string) T {
	r.mx.Lock()
	defer r.mx.Unlock()

	v, ok := r.cache.Get(sid)
	if !ok {
		v = r.newFunc()
	}
	r.cache.Add(sid, v)
	return v
}

// Peek returns the state of sid without seeding it or touching its idle timer.
func (r *Registry[T]) Peek(sid string) (T, bool) {
	return r.cache.Peek(sid)
}

func (r *Registry[T]) Remove(sid string) {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.removing.Store(true)
	r.cache.Remove(sid)
	r.removing.Store(false)
}

func (r *Registry[T]) Len() int {
	return r.cache.Len()
}
