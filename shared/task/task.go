// Package task runs fire-and-forget side effects detached from the request that started them.
package task

import (
	"agency/infras/otel"
	"agency/shared/constant"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 30 * time.Second

type Func func(ctx context.Context) error

type Runner interface {
	// Go starts fn in the background. Request cancellation does not reach fn.
	Go(ctx context.Context, name string, fn Func)
	// Wait blocks until every started task finished or ctx is done.
	Wait(ctx context.Context) error
}

type runner struct {
	wg      sync.WaitGroup
	otel    otel.Otel
	timeout time.Duration
}

func NewRunner(otl otel.Otel, timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &runner{otel: otl, timeout: timeout}
}

func (r *runner) Go(ctx context.Context, name string, fn Func) {
	detached := context.WithoutCancel(ctx)

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		taskCtx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()

		taskCtx, scope := r.otel.NewScope(taskCtx, constant.OtelTaskScopeName, constant.OtelTaskScopeName+"."+name)
		defer scope.End()

		err := run(taskCtx, fn)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("task", name).Msg("background task failed")

			return
		}

		log.Debug().Str("task", name).Msg("background task finished")
	}()
}

func run(ctx context.Context, fn Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panicked: %v", rec)
		}
	}()

	return fn(ctx)
}

func (r *runner) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background tasks: %w", ctx.Err())
	}
}
