// Package lifecycle binds a command run to process interrupt signals and
// coordinates cleanup hooks when the run ends.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Coordinator owns the run context. The context is cancelled when an
// interrupt signal arrives, the parent is cancelled, or Shutdown is called.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	stop       func()
	shutdownWg sync.WaitGroup
}

// New creates a Coordinator derived from parent that also cancels on the
// given signals, or on SIGINT and SIGTERM when none are given.
func New(parent context.Context, signals ...os.Signal) *Coordinator {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	sigCtx, stop := signal.NotifyContext(parent, signals...)
	ctx, cancel := context.WithCancel(sigCtx)

	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
		stop:   stop,
	}
}

// Context returns the run context.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnShutdown registers fn to run once the run context is done.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(func() {
		<-c.ctx.Done()
		fn()
	})
}

// Shutdown cancels the run context, releases signal handling, and waits
// for shutdown hooks to complete within timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()
	c.stop()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
