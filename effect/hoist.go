package effect

import "context"

// The functions below are context-to-context transforms for action.Hoist.
// None of them changes which effect runs, only where its outcome is reported.

// IdentityToResult reports an already performed synchronous effect as a
// success.
func IdentityToResult(Unit) error {
	return nil
}

// LazyToIdentity executes the deferred effect immediately.
func LazyToIdentity(io IO[Unit]) Unit {
	return Run(io)
}

// LazyToResult executes the deferred effect and reports success.
func LazyToResult(io IO[Unit]) error {
	Run(io)
	return nil
}

// ResultToAsync reports a synchronous outcome as an already resolved Task.
func ResultToAsync(err error) Task {
	if err != nil {
		return Failed[Unit](err)
	}
	return Done(Unit{})
}

// LazyToAsync defers the effect to the Task's goroutine.
func LazyToAsync(io IO[Unit]) Task {
	return Go(func(context.Context) (Unit, error) {
		return Run(io), nil
	})
}
