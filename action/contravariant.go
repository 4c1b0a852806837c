package action

import (
	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
)

// Map adapts an action on B into an action on A by transforming every
// incoming message with f.
//
// Map(identity, a) behaves like a, and Map(f, Map(g, a)) behaves like
// Map(func(x A) C { return g(f(x)) }, a).
func Map[F, A, B any](f func(A) B, a Action[F, B]) Action[F, A] {
	return New(func(msg A) F {
		return a.run(f(msg))
	})
}

// MapFallible is Map for a transformation that may yield nothing. When f
// reports false, a is not invoked and the unit effect is returned.
func MapFallible[F, A, B any](seq effect.Sequencer[F], f func(A) (B, bool), a Action[F, B]) Action[F, A] {
	return New(func(msg A) F {
		if b, ok := f(msg); ok {
			return a.run(b)
		}
		return seq.Unit()
	})
}

// MapM is Map for a transformation that runs in the effect context itself.
func MapM[F, FB, A, B any](bind effect.Binder[F, FB, B], f func(A) FB, a Action[F, B]) Action[F, A] {
	return New(func(msg A) F {
		return bind.Bind(f(msg), a.run)
	})
}

// MapFallibleM combines MapM and MapFallible.
func MapFallibleM[F, FO, A, B any](
	bind effect.Binder[F, FO, pure.Option[B]],
	f func(A) FO,
	a Action[F, B],
) Action[F, A] {
	return New(func(msg A) F {
		return bind.Bind(f(msg), func(o pure.Option[B]) F {
			if b, ok := o.Get(); ok {
				return a.run(b)
			}
			return bind.Unit()
		})
	})
}

// ReplaceConst ignores the incoming message and always runs a on b.
func ReplaceConst[F, A, B any](b B, a Action[F, B]) Action[F, A] {
	return New(func(A) F {
		return a.run(b)
	})
}
