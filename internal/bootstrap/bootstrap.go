// Package bootstrap ties process lifecycle to resource cleanup.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
)

// App runs a command body with OS-interrupt handling and guarantees the
// registered cleanup functions run, whether the body finishes on its own
// or a signal cuts it short.
type App struct {
	mu       sync.Mutex
	cleanups []func() error
}

// New creates a new App.
func New() *App {
	return &App{}
}

// OnShutdown registers a cleanup function. Cleanups run in reverse
// registration order (LIFO). Safe for concurrent use.
func (a *App) OnShutdown(fn func() error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cleanups = append(a.cleanups, fn)
}

// Run executes run with a context that is cancelled on OS interrupt.
// After run returns - or the interrupt arrives first - all registered
// cleanups are executed and their errors joined with run's error.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.cleanups = nil
	return errors.Join(errs...)
}
