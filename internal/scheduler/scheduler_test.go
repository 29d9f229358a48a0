package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsRefresh(t *testing.T) {
	var calls atomic.Int32
	r := RefresherFunc(func(ctx context.Context) (bool, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		calls.Add(1)
		return true, nil
	})

	s := New(r, 20*time.Millisecond, time.Second, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_DisabledWhenIntervalIsZero(t *testing.T) {
	var calls atomic.Int32
	r := RefresherFunc(func(context.Context) (bool, error) {
		calls.Add(1)
		return false, errors.New("should not run")
	})

	s := New(r, 0, time.Second, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
