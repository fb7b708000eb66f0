package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	startErr error
	stopErr  error
	started  atomic.Bool
	stopped  atomic.Bool
}

func (f *fakeAdapter) Start(ctx context.Context) error {
	f.started.Store(true)
	if f.startErr != nil {
		return f.startErr
	}
	<-ctx.Done()
	return nil
}

func (f *fakeAdapter) Stop(context.Context) error {
	f.stopped.Store(true)
	return f.stopErr
}

func TestRunStopsOnContext(t *testing.T) {
	var (
		a, b        = &fakeAdapter{}, &fakeAdapter{}
		app         = New()
		ctx, cancel = context.WithCancel(context.Background())
	)
	app.AddAdapter(a, b)

	go func() {
		for !a.started.Load() || !b.started.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()
	}()

	require.NoError(t, app.Run(ctx))
	require.True(t, a.stopped.Load())
	require.True(t, b.stopped.Load())
}

func TestRunStartFailure(t *testing.T) {
	var (
		boom   = errors.New("address in use")
		broken = &fakeAdapter{startErr: boom}
		ok     = &fakeAdapter{stopErr: errors.New("stop failed")}
		app    = New()
	)
	app.AddAdapter(broken, ok)
	app.WithShutdownTimeout(time.Second)

	err := app.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.True(t, ok.stopped.Load())
}
