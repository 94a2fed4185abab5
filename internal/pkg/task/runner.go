package task

import (
	"context"
	"sync"
	"time"

	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/metrics"
)

// Runner delays operations keyed by name. Starting an operation cancels the pending one with the
// same key, so the most recently issued operation is the one whose effect lands.
type Runner struct {
	mx      sync.Mutex
	seq     uint64
	pending map[string]pendingOp
}

type pendingOp struct {
	id     uint64
	cancel context.CancelCauseFunc
}

func NewRunner() *Runner {
	return &Runner{pending: make(map[string]pendingOp)}
}

// Run waits for delay and then calls fn. It returns constants.ErrSuperseded if a newer Run for
// key started in the meantime, or the context error if ctx ends first.
func (r *Runner) Run(ctx context.Context, key string, delay time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	id := r.register(key, cancel)
	defer r.release(key, id)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
	}

	if !r.current(key, id) {
		return constants.ErrSuperseded
	}

	return fn(ctx)
}

// Pending reports whether an operation for key is waiting.
func (r *Runner) Pending(key string) bool {
	r.mx.Lock()
	defer r.mx.Unlock()

	_, ok := r.pending[key]
	return ok
}

func (r *Runner) register(key string, cancel context.CancelCauseFunc) uint64 {
	r.mx.Lock()
	defer r.mx.Unlock()

	if prev, ok := r.pending[key]; ok {
		prev.cancel(constants.ErrSuperseded)
		metrics.Superseded.Inc()
	}
	r.seq++
	r.pending[key] = pendingOp{id: r.seq, cancel: cancel}
	return r.seq
}

func (r *Runner) current(key string, id uint64) bool {
	r.mx.Lock()
	defer r.mx.Unlock()

	op, ok := r.pending[key]
	return ok && op.id == id
}

func (r *Runner) release(key string, id uint64) {
	r.mx.Lock()
	defer r.mx.Unlock()

	if op, ok := r.pending[key]; ok && op.id == id {
		delete(r.pending, key)
	}
}
