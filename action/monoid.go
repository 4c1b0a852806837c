package action

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/action_ive_go/effect"
	"github.com/on-the-ground/action_ive_go/pure"
)

// Empty returns the action that does nothing for any message. It is the
// identity of Combine.
func Empty[F, Msg any](seq effect.Sequencer[F]) Action[F, Msg] {
	return New(func(Msg) F {
		return seq.Unit()
	})
}

// Combine runs a then b on the same message.
//
// Combine is associative, and Empty is neutral on both sides.
func Combine[F, Msg any](seq effect.Sequencer[F], a, b Action[F, Msg]) Action[F, Msg] {
	return New(func(msg Msg) F {
		return seq.Then(a.run(msg), func() F {
			return b.run(msg)
		})
	})
}

// Fold combines actions left to right. Folding nothing yields Empty.
func Fold[F, Msg any](seq effect.Sequencer[F], actions ...Action[F, Msg]) Action[F, Msg] {
	switch len(actions) {
	case 0:
		return Empty[F, Msg](seq)
	case 1:
		return actions[0]
	}
	acc := actions[0]
	for _, a := range actions[1:] {
		acc = Combine(seq, acc, a)
	}
	return acc
}

// FoldSeq is Fold over an iterator. The iterator is drained once, when
// FoldSeq is called.
func FoldSeq[F, Msg any](seq effect.Sequencer[F], actions iter.Seq[Action[F, Msg]]) Action[F, Msg] {
	var collected []Action[F, Msg]
	for a := range actions {
		collected = append(collected, a)
	}
	return Fold(seq, collected...)
}

// Fold1 combines a non-empty run of actions left to right.
func Fold1[F, Msg any](seq effect.Sequencer[F], actions pure.NonEmpty[Action[F, Msg]]) Action[F, Msg] {
	acc := actions.Head
	for _, a := range actions.Tail {
		acc = Combine(seq, acc, a)
	}
	return acc
}

// Repeat combines a with itself n times, so one invocation runs a's effect
// n times in a row. Repeat with n == 0 is Empty.
//
// Repeat panics if n is negative.
func Repeat[F, Msg any](seq effect.Sequencer[F], n int, a Action[F, Msg]) Action[F, Msg] {
	if n < 0 {
		panic(fmt.Errorf("action.Repeat: %w: %d", ErrNegativeRepeat, n))
	}
	if n == 0 {
		return Empty[F, Msg](seq)
	}
	acc := a
	for range n - 1 {
		acc = Combine(seq, acc, a)
	}
	return acc
}
