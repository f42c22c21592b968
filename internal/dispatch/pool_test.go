package dispatch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRun(t *testing.T) {
	p := NewPool(2)
	require.NoError(t, p.Start())
	defer p.Stop()

	t.Run("start more times", func(t *testing.T) {
		require.NoError(t, p.Start())
	})

	t.Run("waits for every job", func(t *testing.T) {
		var n atomic.Int32
		jobs := make([]func(), 10)
		for i := range jobs {
			jobs[i] = func() {
				time.Sleep(5 * time.Millisecond)
				n.Add(1)
			}
		}
		p.Run(context.Background(), jobs...)
		require.Equal(t, int32(10), n.Load())
	})

	t.Run("panic in one job does not stop the batch", func(t *testing.T) {
		var n atomic.Int32
		p.Run(context.Background(),
			func() { panic("oops") },
			func() { n.Add(1) },
		)
		require.Equal(t, int32(1), n.Load())
	})
}

func TestPoolRunWithoutStart(t *testing.T) {
	var n atomic.Int32
	var p *Pool
	p.Run(context.Background(), func() { n.Add(1) }, func() { n.Add(1) })
	require.Equal(t, int32(2), n.Load())

	stopped := NewPool(1)
	stopped.Run(context.Background(), func() { n.Add(1) })
	require.Equal(t, int32(3), n.Load())
}

func TestPoolRunContextDone(t *testing.T) {
	p := NewPool(1)
	require.NoError(t, p.Start())
	defer p.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	start := time.Now()
	p.Run(ctx, func() { <-release })
	close(release)
	require.Less(t, time.Since(start), time.Second)
}
