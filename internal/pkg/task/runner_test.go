package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunsAfterDelay(t *testing.T) {
	r := NewRunner()

	start := time.Now()
	var ran bool
	err := r.Run(context.Background(), "search", 20*time.Millisecond, func(context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.False(t, r.Pending("search"))
}

func TestRunner_PropagatesError(t *testing.T) {
	r := NewRunner()
	boom := errors.New("boom")

	err := r.Run(context.Background(), "k", 0, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRunner_NewerRunSupersedesPending(t *testing.T) {
	r := NewRunner()
	var applied atomic.Int32

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- r.Run(context.Background(), "search", time.Second, func(context.Context) error {
			applied.Store(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return r.Pending("search") }, time.Second, time.Millisecond)

	err := r.Run(context.Background(), "search", 10*time.Millisecond, func(context.Context) error {
		applied.Store(2)
		return nil
	})
	require.NoError(t, err)

	select {
	case firstErr := <-firstDone:
		assert.ErrorIs(t, firstErr, constants.ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("first run was not cancelled")
	}
	assert.Equal(t, int32(2), applied.Load())
}

func TestRunner_KeysAreIndependent(t *testing.T) {
	r := NewRunner()

	done := make(chan error, 1)
	go func() {
		done <- r.Run(context.Background(), "a", 30*time.Millisecond, func(context.Context) error { return nil })
	}()
	require.Eventually(t, func() bool { return r.Pending("a") }, time.Second, time.Millisecond)

	require.NoError(t, r.Run(context.Background(), "b", 0, func(context.Context) error { return nil }))
	assert.NoError(t, <-done)
}

func TestRunner_ContextCancel(t *testing.T) {
	r := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, "k", time.Second, func(context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
