package effect

import (
	"context"
	"errors"
)

var _ Binder[Task, Future[int], int] = AsyncBind[int]{}

var (
	// ErrNilTask is returned by Await for a nil Future.
	ErrNilTask = errors.New("nil task")
	// ErrClosedFuture is returned by Await when a Future's channel closes
	// without a result.
	ErrClosedFuture = errors.New("future result channel closed")
)

// Future is an asynchronous computation. Calling it issues the work and
// returns a channel that receives exactly one Try before being closed.
type Future[B any] func(context.Context) <-chan Try[B]

// Task is the unit effect of the Async context.
type Task = Future[Unit]

// Go lifts a blocking function into a Future running on its own goroutine.
//
// If ctx is already done when the goroutine starts, fn is not called and the
// Future resolves to ctx.Err().
func Go[B any](fn func(context.Context) (B, error)) Future[B] {
	return func(ctx context.Context) <-chan Try[B] {
		done := make(chan Try[B], 1)
		ready := make(chan struct{})
		go func() {
			defer close(done)
			close(ready)

			select {
			case <-ctx.Done():
				done <- Fail[B](ctx.Err())
				return
			default:
			}

			v, err := fn(ctx)
			done <- TryOf(v, err)
		}()
		<-ready
		return done
	}
}

// Done returns a Future that has already resolved to v.
func Done[B any](v B) Future[B] {
	return func(context.Context) <-chan Try[B] {
		ch := make(chan Try[B], 1)
		ch <- Ok(v)
		close(ch)
		return ch
	}
}

// Failed returns a Future that has already resolved to err.
func Failed[B any](err error) Future[B] {
	return func(context.Context) <-chan Try[B] {
		ch := make(chan Try[B], 1)
		ch <- Fail[B](err)
		close(ch)
		return ch
	}
}

// Await issues f and blocks until it resolves or ctx is done.
func Await[B any](ctx context.Context, f Future[B]) (B, error) {
	var zero B
	if f == nil {
		return zero, ErrNilTask
	}

	select {
	case res, ok := <-f(ctx):
		if !ok {
			return zero, ErrClosedFuture
		}
		return res.Value, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Async is the asynchronous context. Sequencing orders completion as well
// as issuance: next is issued only after first resolved successfully.
type Async struct{}

func (Async) Unit() Task {
	return Done(Unit{})
}

func (Async) Then(first Task, next func() Task) Task {
	return Go(func(ctx context.Context) (Unit, error) {
		if _, err := Await(ctx, first); err != nil {
			return Unit{}, err
		}
		return Await(ctx, next())
	})
}

// AsyncBind is Async with dependent sequencing over a Future[B].
type AsyncBind[B any] struct{ Async }

func (AsyncBind[B]) Bind(fb Future[B], k func(B) Task) Task {
	return Go(func(ctx context.Context) (Unit, error) {
		b, err := Await(ctx, fb)
		if err != nil {
			return Unit{}, err
		}
		return Await(ctx, k(b))
	})
}
