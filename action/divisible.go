package action

import (
	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
)

// Divide splits every message in two and runs b on the first half, then c
// on the second.
func Divide[F, A, B, C any](
	seq effect.Sequencer[F],
	split func(A) pure.Pair[B, C],
	b Action[F, B],
	c Action[F, C],
) Action[F, A] {
	return New(func(msg A) F {
		p := split(msg)
		return seq.Then(b.run(p.Fst), func() F {
			return c.run(p.Snd)
		})
	})
}

// DivideM is Divide with a split that runs in the effect context, before
// either half is handled.
func DivideM[F, FP, A, B, C any](
	bind effect.Binder[F, FP, pure.Pair[B, C]],
	split func(A) FP,
	b Action[F, B],
	c Action[F, C],
) Action[F, A] {
	return New(func(msg A) F {
		return bind.Bind(split(msg), func(p pure.Pair[B, C]) F {
			return bind.Then(b.run(p.Fst), func() F {
				return c.run(p.Snd)
			})
		})
	})
}

// Conquer is the identity of Divide. It is the same action as Empty.
func Conquer[F, Msg any](seq effect.Sequencer[F]) Action[F, Msg] {
	return Empty[F, Msg](seq)
}

// PairCombine runs a on the first component of a pair, then b on the second.
func PairCombine[F, A, B any](seq effect.Sequencer[F], a Action[F, A], b Action[F, B]) Action[F, pure.Pair[A, B]] {
	return Divide(seq, func(p pure.Pair[A, B]) pure.Pair[A, B] { return p }, a, b)
}

// ThenConst runs a on the message, then the message-less action after.
func ThenConst[F, Msg any](seq effect.Sequencer[F], a Action[F, Msg], after Action[F, effect.Unit]) Action[F, Msg] {
	return New(func(msg Msg) F {
		return seq.Then(a.run(msg), func() F {
			return after.run(effect.Unit{})
		})
	})
}

// ConstThen runs the message-less action before, then a on the message.
func ConstThen[F, Msg any](seq effect.Sequencer[F], before Action[F, effect.Unit], a Action[F, Msg]) Action[F, Msg] {
	return New(func(msg Msg) F {
		return seq.Then(before.run(effect.Unit{}), func() F {
			return a.run(msg)
		})
	})
}
