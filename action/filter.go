package action

import "github.com/on-the-ground/action_ive_go/effect"

// Filter runs a only for messages that satisfy p. The predicate is
// evaluated exactly once per invocation.
func Filter[F, Msg any](seq effect.Sequencer[F], p func(Msg) bool, a Action[F, Msg]) Action[F, Msg] {
	return New(func(msg Msg) F {
		if p(msg) {
			return a.run(msg)
		}
		return seq.Unit()
	})
}

// FilterM is Filter with a predicate that runs in the effect context.
func FilterM[F, FBool, Msg any](bind effect.Binder[F, FBool, bool], p func(Msg) FBool, a Action[F, Msg]) Action[F, Msg] {
	return New(func(msg Msg) F {
		return bind.Bind(p(msg), func(keep bool) F {
			if keep {
				return a.run(msg)
			}
			return bind.Unit()
		})
	})
}
