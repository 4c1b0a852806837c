package effect

var _ Binder[IO[Unit], IO[int], int] = LazyBind[int]{}

// IO is a deferred synchronous computation. Nothing happens until it is
// executed.
type IO[B any] func() B

// Run executes io.
func Run[B any](io IO[B]) B {
	return io()
}

// Lazy is the deferred synchronous context.
type Lazy struct{}

func (Lazy) Unit() IO[Unit] {
	return func() Unit { return Unit{} }
}

// Then builds next only once first has been executed.
func (Lazy) Then(first IO[Unit], next func() IO[Unit]) IO[Unit] {
	return func() Unit {
		first()
		return next()()
	}
}

// LazyBind is Lazy with dependent sequencing over an IO[B].
type LazyBind[B any] struct{ Lazy }

func (LazyBind[B]) Bind(fb IO[B], k func(B) IO[Unit]) IO[Unit] {
	return func() Unit {
		return k(fb())()
	}
}
