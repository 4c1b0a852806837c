package effect

var _ Binder[Unit, int, int] = IdentityBind[int]{}

// Identity is the plain synchronous context: an effect has already happened
// by the time its Unit value exists.
type Identity struct{}

func (Identity) Unit() Unit { return Unit{} }

// Then relies on Go's left-to-right evaluation: first was produced before
// Then was entered, next is produced now.
func (Identity) Then(_ Unit, next func() Unit) Unit {
	return next()
}

// IdentityBind is Identity with dependent sequencing over a B.
type IdentityBind[B any] struct{ Identity }

func (IdentityBind[B]) Bind(b B, k func(B) Unit) Unit {
	return k(b)
}
