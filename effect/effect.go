package effect

// Unit is the result of an effect that yields nothing meaningful.
type Unit = struct{}

// Sequencer runs unit effects in order.
//
// Then must start next only after first has been issued, and must use the
// context's own notion of failure: if first failed, next is not built.
type Sequencer[F any] interface {
	// Unit returns the effect that does nothing.
	Unit() F
	// Then sequences first before the effect returned by next.
	Then(first F, next func() F) F
}

// Binder is a Sequencer that can also chain on an intermediate result.
//
// F is the context's unit effect and FB the same context carrying a B.
type Binder[F, FB, B any] interface {
	Sequencer[F]
	// Bind runs fb and passes its result to k.
	Bind(fb FB, k func(B) F) F
}

// Try carries either a value or the error that prevented it.
type Try[B any] struct {
	Value B
	Err   error
}

// Ok wraps a successful value.
func Ok[B any](v B) Try[B] {
	return Try[B]{Value: v}
}

// Fail wraps an error.
func Fail[B any](err error) Try[B] {
	return Try[B]{Err: err}
}

// TryOf builds a Try from Go's usual (value, error) pair.
func TryOf[B any](v B, err error) Try[B] {
	return Try[B]{Value: v, Err: err}
}

// Get unpacks the Try.
func (t Try[B]) Get() (B, error) {
	return t.Value, t.Err
}
