package action

import (
	"iter"
	"slices"

	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
)

// The functions in this file need a message type that can itself be
// combined. This is accumulation of messages, not of actions: Duplicate runs
// the action once on a combined message, whereas Combine runs two actions on
// one message.

// Extract runs a on the empty message.
func Extract[F, Msg any](m pure.Monoid[Msg], a Action[F, Msg]) F {
	return a.run(m.Empty())
}

// Extend builds an action that, given msg, hands f an inner action. Running
// the inner action with next runs a with Combine(msg, next).
//
// Extending a stage that appends ".g" onto a stage that appends ".f1" then
// ".f2" and running it with "foo" runs a on "foo.g.f1" then "foo.g.f2".
func Extend[F, Msg any](s pure.Semigroup[Msg], f func(Action[F, Msg]) F, a Action[F, Msg]) Action[F, Msg] {
	return New(func(msg Msg) F {
		return f(New(func(next Msg) F {
			return a.run(s.Combine(msg, next))
		}))
	})
}

// ExtendTo is Extend under the name of its arrow, f <<= a.
func ExtendTo[F, Msg any](s pure.Semigroup[Msg], f func(Action[F, Msg]) F, a Action[F, Msg]) Action[F, Msg] {
	return Extend(s, f, a)
}

// ExtendOn is Extend with the action first, a =>> f.
func ExtendOn[F, Msg any](s pure.Semigroup[Msg], a Action[F, Msg], f func(Action[F, Msg]) F) Action[F, Msg] {
	return Extend(s, f, a)
}

// Duplicate combines the two messages of a pair, first then second, and
// runs a once on the result.
func Duplicate[F, Msg any](s pure.Semigroup[Msg], a Action[F, Msg]) Action[F, pure.Pair[Msg, Msg]] {
	return New(func(p pure.Pair[Msg, Msg]) F {
		return a.run(s.Combine(p.Fst, p.Snd))
	})
}

// Multiplicate folds a slice of messages into one and runs a once. An empty
// slice folds to m.Empty().
func Multiplicate[F, Msg any](m pure.Monoid[Msg], a Action[F, Msg]) Action[F, []Msg] {
	return New(func(msgs []Msg) F {
		return a.run(pure.Concat(m, msgs...))
	})
}

// MultiplicateSeq is Multiplicate over an iterator.
func MultiplicateSeq[F, Msg any](m pure.Monoid[Msg], a Action[F, Msg]) Action[F, iter.Seq[Msg]] {
	return New(func(msgs iter.Seq[Msg]) F {
		return a.run(pure.ConcatSeq(m, msgs))
	})
}

// Multiplicate1 is Multiplicate over a non-empty sequence; it needs no
// empty message.
func Multiplicate1[F, Msg any](s pure.Semigroup[Msg], a Action[F, Msg]) Action[F, pure.NonEmpty[Msg]] {
	return New(func(msgs pure.NonEmpty[Msg]) F {
		return a.run(pure.Concat1(s, msgs))
	})
}

// Separate runs a once per message, in order.
func Separate[F, Msg any](seq effect.Sequencer[F], a Action[F, Msg]) Action[F, []Msg] {
	each := SeparateSeq(seq, a)
	return New(func(msgs []Msg) F {
		return each.run(slices.Values(msgs))
	})
}

// SeparateSeq is Separate over an iterator. The iterator is consumed when the
// action is invoked.
func SeparateSeq[F, Msg any](seq effect.Sequencer[F], a Action[F, Msg]) Action[F, iter.Seq[Msg]] {
	return New(func(msgs iter.Seq[Msg]) F {
		acc := seq.Unit()
		for msg := range msgs {
			acc = seq.Then(acc, func() F {
				return a.run(msg)
			})
		}
		return acc
	})
}
