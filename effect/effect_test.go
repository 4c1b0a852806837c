package effect_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ThenShortCircuits(t *testing.T) {
	var seq effect.Result
	boom := errors.New("boom")
	built := false

	err := seq.Then(boom, func() error {
		built = true
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, built, "next must not be built after a failure")
	assert.NoError(t, seq.Then(seq.Unit(), seq.Unit))
}

func TestResultBind(t *testing.T) {
	var bind effect.ResultBind[int]
	boom := errors.New("boom")

	got := 0
	require.NoError(t, bind.Bind(effect.Ok(3), func(n int) error {
		got = n
		return nil
	}))
	assert.Equal(t, 3, got)

	err := bind.Bind(effect.Fail[int](boom), func(int) error {
		t.Fatal("continuation must not run")
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestLazy_DefersUntilRun(t *testing.T) {
	var seq effect.Lazy
	var order []string

	step := func(name string) effect.IO[effect.Unit] {
		return func() effect.Unit {
			order = append(order, name)
			return effect.Unit{}
		}
	}

	io := seq.Then(step("first"), func() effect.IO[effect.Unit] { return step("second") })
	assert.Empty(t, order)

	effect.Run(io)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestLazyBind(t *testing.T) {
	var bind effect.LazyBind[string]
	var got string

	io := bind.Bind(func() string { return "hello" }, func(s string) effect.IO[effect.Unit] {
		return func() effect.Unit {
			got = s
			return effect.Unit{}
		}
	})
	assert.Empty(t, got)

	effect.Run(io)
	assert.Equal(t, "hello", got)
}

func TestAsync_ThenOrdersCompletion(t *testing.T) {
	var seq effect.Async
	var firstDone atomic.Bool

	first := effect.Go(func(context.Context) (effect.Unit, error) {
		time.Sleep(30 * time.Millisecond)
		firstDone.Store(true)
		return effect.Unit{}, nil
	})
	second := effect.Go(func(context.Context) (effect.Unit, error) {
		if !firstDone.Load() {
			return effect.Unit{}, errors.New("second started before first finished")
		}
		return effect.Unit{}, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := effect.Await(ctx, seq.Then(first, func() effect.Task { return second }))
	require.NoError(t, err)
}

func TestAsync_ThenShortCircuits(t *testing.T) {
	var seq effect.Async
	boom := errors.New("boom")
	var built atomic.Bool

	task := seq.Then(effect.Failed[effect.Unit](boom), func() effect.Task {
		built.Store(true)
		return seq.Unit()
	})

	_, err := effect.Await(context.Background(), task)
	require.ErrorIs(t, err, boom)
	assert.False(t, built.Load())
}

func TestAsyncBind(t *testing.T) {
	var bind effect.AsyncBind[int]
	got := make(chan int, 1)

	task := bind.Bind(effect.Done(21), func(n int) effect.Task {
		return effect.Go(func(context.Context) (effect.Unit, error) {
			got <- n * 2
			return effect.Unit{}, nil
		})
	})

	_, err := effect.Await(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, 42, <-got)
}

func TestAwait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	slow := effect.Go(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 1, nil
		}
	})

	_, err := effect.Await(ctx, slow)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwait_NilTask(t *testing.T) {
	_, err := effect.Await[int](context.Background(), nil)
	require.ErrorIs(t, err, effect.ErrNilTask)
}

func TestHoistTransforms(t *testing.T) {
	boom := errors.New("boom")
	ctx := context.Background()

	assert.NoError(t, effect.IdentityToResult(effect.Unit{}))

	ran := false
	assert.NoError(t, effect.LazyToResult(func() effect.Unit {
		ran = true
		return effect.Unit{}
	}))
	assert.True(t, ran)

	_, err := effect.Await(ctx, effect.ResultToAsync(boom))
	assert.ErrorIs(t, err, boom)

	_, err = effect.Await(ctx, effect.ResultToAsync(nil))
	assert.NoError(t, err)
}
