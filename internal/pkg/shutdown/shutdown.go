package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Wait blocks until a termination signal arrives or ctx is done.
// A second signal afterwards kills the process.
func Wait(ctx context.Context) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(
		signalChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	select {
	case <-signalChan:
		zap.L().Info("os.Interrupt - shutting down...")
	case <-ctx.Done():
		signal.Stop(signalChan)
		return
	}

	go func() {
		<-signalChan
		zap.L().Fatal("os.Kill - terminating...")
	}()
}
