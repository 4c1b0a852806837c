package effect

var _ Binder[error, Try[int], int] = ResultBind[int]{}

// Result is the synchronous result-or-failure context. The unit effect is
// the error returned by the call; nil means success.
type Result struct{}

func (Result) Unit() error { return nil }

// Then returns first without building next when first failed.
func (Result) Then(first error, next func() error) error {
	if first != nil {
		return first
	}
	return next()
}

// ResultBind is Result with dependent sequencing over a Try[B].
type ResultBind[B any] struct{ Result }

func (ResultBind[B]) Bind(fb Try[B], k func(B) error) error {
	if fb.Err != nil {
		return fb.Err
	}
	return k(fb.Value)
}
