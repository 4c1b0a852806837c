package action

import (
	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
)

// Lose builds an action for a message type with no legitimate values. f
// proves that any A would yield a pure.Void; running the action is
// unreachable and panics with pure.ErrAbsurd.
func Lose[F, A any](f func(A) pure.Void) Action[F, A] {
	return New(func(msg A) F {
		return pure.Absurd[F](f(msg))
	})
}

// Choose classifies every message and runs exactly one of b and c.
func Choose[F, A, B, C any](sel func(A) pure.Either[B, C], b Action[F, B], c Action[F, C]) Action[F, A] {
	return New(func(msg A) F {
		return pure.Match(sel(msg), b.run, c.run)
	})
}

// ChooseM is Choose with a classification that runs in the effect context.
func ChooseM[F, FE, A, B, C any](
	bind effect.Binder[F, FE, pure.Either[B, C]],
	sel func(A) FE,
	b Action[F, B],
	c Action[F, C],
) Action[F, A] {
	return New(func(msg A) F {
		return bind.Bind(sel(msg), func(e pure.Either[B, C]) F {
			return pure.Match(e, b.run, c.run)
		})
	})
}

// EitherCombine routes Left values to b and Right values to c.
func EitherCombine[F, B, C any](b Action[F, B], c Action[F, C]) Action[F, pure.Either[B, C]] {
	return Choose(func(e pure.Either[B, C]) pure.Either[B, C] { return e }, b, c)
}
